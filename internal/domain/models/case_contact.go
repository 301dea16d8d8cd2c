// internal/domain/models/case_contact.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaseContact is a logged interaction (attempted or completed) on a case,
// dated and attributed to the volunteer who created it.
//
// ContactMade distinguishes an actual contact from a logged attempt.
// Recency queries ("any contact in the window") deliberately ignore it;
// callers that care whether contact actually happened query it separately.
type CaseContact struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CaseID         primitive.ObjectID `bson:"case_id" json:"case_id"`
	CreatorID      primitive.ObjectID `bson:"creator_id" json:"creator_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	OccurredAt     time.Time          `bson:"occurred_at" json:"occurred_at"`
	ContactMade    bool               `bson:"contact_made" json:"contact_made"`
	ContactTypes   []string           `bson:"contact_types,omitempty" json:"contact_types,omitempty"`
	DurationMins   int                `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
