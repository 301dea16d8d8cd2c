// internal/app/features/supervisors/types.go
package supervisors

import (
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type supervisorRow struct {
	ID       primitive.ObjectID
	FullName string
	Email    string
	OrgName  string
	Active   bool
}

type listData struct {
	formutil.Base

	Rows       []supervisorRow
	Shown      int
	HasNext    bool
	NextCursor string
	RangeStart int
	RangeEnd   int

	SelectedOrg string
}

type orgOption struct {
	ID   primitive.ObjectID
	Name string
}

type formData struct {
	formutil.Base

	Orgs   []orgOption
	OrgHex string

	FullName string
	Email    string
}

type supervisedRow struct {
	ID       primitive.ObjectID
	FullName string
	Email    string
	Active   bool
}

type viewData struct {
	formutil.Base

	ID       string
	FullName string
	Email    string
	OrgName  string
	Active   bool

	Volunteers []supervisedRow
}
