// internal/app/features/volunteers/types.go
package volunteers

import (
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table row for the volunteers list.
type volunteerRow struct {
	ID       primitive.ObjectID
	FullName string
	Email    string
	OrgName  string
	Active   bool
}

type listData struct {
	formutil.Base

	Rows       []volunteerRow
	Shown      int
	HasNext    bool
	NextCursor string
	RangeStart int
	RangeEnd   int

	// SelectedOrg is the hex org filter for admin views ("" means all).
	SelectedOrg string
}

type unsupervisedData struct {
	formutil.Base
	OrgName string
	Rows    []volunteerRow
}

// Common aux type for the org picker on the new/edit forms.
type orgOption struct {
	ID   primitive.ObjectID
	Name string
}

type formData struct {
	formutil.Base

	// org picker state
	OrgLocked bool
	OrgHex    string
	OrgName   string
	Orgs      []orgOption

	// form echo-on-error
	ID       string
	FullName string
	Email    string
	Password string
}

type assignedCase struct {
	CaseID        primitive.ObjectID
	CaseNumber    string
	YouthInitials string
}

type viewData struct {
	formutil.Base

	ID       string
	FullName string
	Email    string
	OrgName  string
	Active   bool

	HasSupervisor  bool
	SupervisorName string
	SupervisorID   string

	Cases []assignedCase

	// ContactCurrent reports whether the volunteer logged a contact attempt
	// on every active case within the window.
	ContactCurrent    bool
	ContactWindowDays int

	// Supervisors available for assignment (same org).
	Supervisors []orgOption
}
