package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a test organization with the given name.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		City:      "Test City",
		CityCI:    text.Fold("Test City"),
		State:     "TS",
		StateCI:   text.Fold("TS"),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}

// CreateUser creates a test user with the given role. Supervisors and
// volunteers must carry an organization.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string, orgID *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:             primitive.NewObjectID(),
		FullName:       fullName,
		FullNameCI:     text.Fold(fullName),
		Email:          email,
		AuthMethod:     "password",
		Role:           role,
		Active:         true,
		OrganizationID: orgID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleAdmin, nil)
}

// CreateSupervisor creates a test supervisor in the given organization.
func (f *Fixtures) CreateSupervisor(ctx context.Context, fullName, email string, orgID primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleSupervisor, &orgID)
}

// CreateVolunteer creates a test volunteer in the given organization.
func (f *Fixtures) CreateVolunteer(ctx context.Context, fullName, email string, orgID primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleVolunteer, &orgID)
}

// CreateInactiveVolunteer creates a volunteer whose active flag is off.
func (f *Fixtures) CreateInactiveVolunteer(ctx context.Context, fullName, email string, orgID primitive.ObjectID) models.User {
	f.t.Helper()

	u := f.CreateVolunteer(ctx, fullName, email, orgID)
	_, err := f.db.Collection("users").UpdateOne(ctx,
		bson.M{"_id": u.ID}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		f.t.Fatalf("failed to deactivate test volunteer: %v", err)
	}
	u.Active = false
	return u
}

// CreateCase creates a test case in the given organization.
func (f *Fixtures) CreateCase(ctx context.Context, caseNumber, youthInitials string, orgID primitive.ObjectID) models.Case {
	f.t.Helper()

	now := time.Now().UTC()
	cs := models.Case{
		ID:             primitive.NewObjectID(),
		CaseNumber:     caseNumber,
		CaseNumberCI:   text.Fold(caseNumber),
		YouthInitials:  youthInitials,
		OrganizationID: orgID,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("cases").InsertOne(ctx, cs); err != nil {
		f.t.Fatalf("failed to create test case: %v", err)
	}
	return cs
}

// CreateAssignment links a volunteer to a case.
func (f *Fixtures) CreateAssignment(ctx context.Context, volunteerID, caseID, orgID primitive.ObjectID, active bool) models.CaseAssignment {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.CaseAssignment{
		ID:             primitive.NewObjectID(),
		VolunteerID:    volunteerID,
		CaseID:         caseID,
		OrganizationID: orgID,
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("case_assignments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return a
}

// CreateSupervision links a volunteer to a supervisor at a given creation
// time, so tests can control which record is most recent.
func (f *Fixtures) CreateSupervision(ctx context.Context, supervisorID, volunteerID, orgID primitive.ObjectID, active bool, createdAt time.Time) models.SupervisorVolunteer {
	f.t.Helper()

	sv := models.SupervisorVolunteer{
		ID:             primitive.NewObjectID(),
		SupervisorID:   supervisorID,
		VolunteerID:    volunteerID,
		OrganizationID: orgID,
		IsActive:       active,
		CreatedAt:      createdAt,
	}

	if _, err := f.db.Collection("supervisor_volunteers").InsertOne(ctx, sv); err != nil {
		f.t.Fatalf("failed to create test supervision record: %v", err)
	}
	return sv
}

// CreateContact logs a contact entry on a case for a volunteer.
func (f *Fixtures) CreateContact(ctx context.Context, creatorID, caseID, orgID primitive.ObjectID, occurredAt time.Time, made bool) models.CaseContact {
	f.t.Helper()

	now := time.Now().UTC()
	cc := models.CaseContact{
		ID:             primitive.NewObjectID(),
		CaseID:         caseID,
		CreatorID:      creatorID,
		OrganizationID: orgID,
		OccurredAt:     occurredAt,
		ContactMade:    made,
		ContactTypes:   []string{"phone"},
		DurationMins:   15,
		Notes:          "Test contact entry",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("case_contacts").InsertOne(ctx, cc); err != nil {
		f.t.Fatalf("failed to create test contact: %v", err)
	}
	return cc
}
