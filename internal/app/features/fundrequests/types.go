// internal/app/features/fundrequests/types.go
package fundrequests

import "github.com/dalemusser/advocatehub/internal/app/system/formutil"

// Form data for the submission page. Every submitted field echoes back on
// a validation failure so nothing typed is lost.
type formData struct {
	formutil.Base

	CaseID     string
	CaseNumber string

	SubmitterEmail     string
	YouthName          string
	PaymentAmount      string
	Deadline           string
	RequestPurpose     string
	PayeeName          string
	RequestedByAndRel  string
	OtherFundingSource string
	Impact             string
	ExtraInfo          string
}
