// internal/domain/models/case_assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaseAssignment links a volunteer to a case. IsActive true means the
// volunteer is currently responsible for the case.
//
// Invariant: deactivating a volunteer retires every one of their
// assignments (is_active=false), not just filters them from queries.
// The volunteer store applies that cascade.
type CaseAssignment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VolunteerID    primitive.ObjectID `bson:"volunteer_id" json:"volunteer_id"`
	CaseID         primitive.ObjectID `bson:"case_id" json:"case_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	IsActive       bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
