// internal/domain/models/case.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Case is the matter a volunteer is assigned to advocate on. Youth are
// identified by initials only; no other identifying detail is stored here.
type Case struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseNumber     string             `bson:"case_number" json:"case_number"`
	CaseNumberCI   string             `bson:"case_number_ci" json:"case_number_ci"`
	YouthInitials  string             `bson:"youth_initials" json:"youth_initials"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	Status         string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
