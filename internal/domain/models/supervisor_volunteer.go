// internal/domain/models/supervisor_volunteer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupervisorVolunteer links a volunteer to a supervisor. Records are kept
// for history; at most one per volunteer is expected active at a time.
// "Current supervisor" = the active record with the most recent CreatedAt.
// Assignment workflows flip IsActive; queries only read it.
type SupervisorVolunteer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SupervisorID   primitive.ObjectID `bson:"supervisor_id" json:"supervisor_id"`
	VolunteerID    primitive.ObjectID `bson:"volunteer_id" json:"volunteer_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	IsActive       bool               `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
