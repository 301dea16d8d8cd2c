// internal/domain/models/fund_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fund request statuses.
const (
	FundRequestSubmitted = "submitted"
	FundRequestApproved  = "approved"
	FundRequestDenied    = "denied"
)

// FundRequest is a one-off form submission requesting payment approval tied
// to a case. Reference is a UUID quoted in the notification email so staff
// can correlate replies with the stored request.
type FundRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID         primitive.ObjectID `bson:"case_id" json:"case_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	Reference      string             `bson:"reference" json:"reference"`

	SubmitterEmail     string `bson:"submitter_email" json:"submitter_email"`
	YouthName          string `bson:"youth_name" json:"youth_name"`
	PaymentAmount      string `bson:"payment_amount" json:"payment_amount"`
	Deadline           string `bson:"deadline,omitempty" json:"deadline,omitempty"`
	RequestPurpose     string `bson:"request_purpose" json:"request_purpose"`
	PayeeName          string `bson:"payee_name" json:"payee_name"`
	RequestedByAndRel  string `bson:"requested_by_and_relationship,omitempty" json:"requested_by_and_relationship,omitempty"`
	OtherFundingSource string `bson:"other_funding_source,omitempty" json:"other_funding_source,omitempty"`
	Impact             string `bson:"impact,omitempty" json:"impact,omitempty"`
	ExtraInfo          string `bson:"extra_information,omitempty" json:"extra_information,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
