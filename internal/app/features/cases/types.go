// internal/app/features/cases/types.go
package cases

import (
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type caseRow struct {
	ID            primitive.ObjectID
	CaseNumber    string
	YouthInitials string
	Status        string
}

type listData struct {
	formutil.Base
	OrgName string
	Rows    []caseRow
}

type formData struct {
	formutil.Base

	OrgLocked bool
	OrgHex    string
	OrgName   string
	Orgs      []orgOption

	CaseNumber    string
	YouthInitials string
}

type orgOption struct {
	ID   primitive.ObjectID
	Name string
}

type assignmentRow struct {
	AssignmentID  primitive.ObjectID
	VolunteerID   primitive.ObjectID
	VolunteerName string
	Active        bool
}

type contactRow struct {
	OccurredAt   time.Time
	CreatorName  string
	ContactMade  bool
	ContactTypes []string
	DurationMins int
	Notes        string
}

type fundRequestRow struct {
	ID        primitive.ObjectID
	Reference string
	Amount    string
	Payee     string
	Status    string
	CreatedAt time.Time
}

type viewData struct {
	formutil.Base

	// Notice is a one-shot confirmation banner, set from the redirect.
	Notice string

	ID            string
	CaseNumber    string
	YouthInitials string
	OrgName       string
	Status        string
	StatusOpen    bool

	// CanManage enables assignment and status controls.
	CanManage bool
	// CanLogContact enables the contact form link for the viewer.
	CanLogContact bool

	Assignments  []assignmentRow
	Contacts     []contactRow
	FundRequests []fundRequestRow

	// Assignable volunteers (active, same org, not already assigned).
	Volunteers []orgOption
}

type contactFormData struct {
	formutil.Base

	CaseID     string
	CaseNumber string

	OccurredAt   string
	ContactMade  bool
	ContactTypes []string
	DurationMins string
	Notes        string
}
