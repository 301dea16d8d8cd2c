// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role labels shared across polymorphic person types. Every user record
// carries exactly one of these; display and reporting code reads the label
// directly rather than switching on type.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleVolunteer  = "volunteer"
)

// User represents admins, supervisors, and volunteers.
//
// NOTE:
//   - FullName is stored verbatim, byte for byte. It is never sanitized or
//     transformed on write or read; FullNameCI is a separate folded copy used
//     only for search and sort. Escaping happens at render time.
//   - Case assignments and supervision links are not embedded on User; use
//     the case_assignments and supervisor_volunteers collections.
type User struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FullName       string              `bson:"full_name" json:"full_name"`
	FullNameCI     string              `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email          string              `bson:"email" json:"email"`
	PasswordHash   string              `bson:"password_hash,omitempty" json:"-"`
	AuthMethod     string              `bson:"auth_method,omitempty" json:"auth_method,omitempty"`
	Role           string              `bson:"role" json:"role"` // admin | supervisor | volunteer
	Active         bool                `bson:"active" json:"active"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organization_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
