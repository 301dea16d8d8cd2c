// internal/app/features/organizations/types.go
package organizations

import (
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table row for the organizations list.
type orgRow struct {
	ID     primitive.ObjectID
	Name   string
	City   string
	State  string
	Status string
}

type listData struct {
	formutil.Base
	Rows []orgRow
}

type formData struct {
	formutil.Base

	// form echo-on-error
	ID          string
	Name        string
	City        string
	State       string
	ContactInfo string
}

type viewData struct {
	formutil.Base

	ID          string
	Name        string
	City        string
	State       string
	ContactInfo string
	Status      string

	SupervisorCount int64
	VolunteerCount  int64
}
