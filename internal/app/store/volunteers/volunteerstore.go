// internal/app/store/volunteers/volunteerstore.go

// Package volunteerstore implements the volunteer lifecycle and reporting
// queries that span users, case_assignments, supervisor_volunteers, and
// case_contacts. Single-collection reads and writes live in the
// per-collection stores; everything here touches at least two collections
// or encodes a cross-collection rule.
package volunteerstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/txn"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	client      *mongo.Client
	users       *mongo.Collection
	assignments *mongo.Collection
	supervision *mongo.Collection
	contacts    *mongo.Collection
}

var ErrNotVolunteer = errors.New("user is not a volunteer")

func New(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:      client,
		users:       db.Collection("users"),
		assignments: db.Collection("case_assignments"),
		supervision: db.Collection("supervisor_volunteers"),
		contacts:    db.Collection("case_contacts"),
	}
}

// getVolunteer loads the user and checks the role.
func (s *Store) getVolunteer(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	if u.Role != models.RoleVolunteer {
		return models.User{}, ErrNotVolunteer
	}
	return u, nil
}

// Activate turns the volunteer's active flag on. Retired case assignments
// stay retired; re-activation does not resurrect them.
func (s *Store) Activate(ctx context.Context, volunteerID primitive.ObjectID) error {
	if _, err := s.getVolunteer(ctx, volunteerID); err != nil {
		return err
	}
	_, err := s.users.UpdateOne(ctx,
		bson.M{"_id": volunteerID},
		bson.M{"$set": bson.M{"active": true, "updated_at": time.Now().UTC()}})
	return err
}

// Deactivate turns the volunteer's active flag off and retires every one of
// their case assignments, active or not. Both writes run in a transaction so
// a volunteer is never left inactive with live assignments.
func (s *Store) Deactivate(ctx context.Context, volunteerID primitive.ObjectID) error {
	if _, err := s.getVolunteer(ctx, volunteerID); err != nil {
		return err
	}
	now := time.Now().UTC()
	return txn.WithTransaction(ctx, s.client, func(ctx context.Context) error {
		if _, err := s.users.UpdateOne(ctx,
			bson.M{"_id": volunteerID},
			bson.M{"$set": bson.M{"active": false, "updated_at": now}}); err != nil {
			return err
		}
		_, err := s.assignments.UpdateMany(ctx,
			bson.M{"volunteer_id": volunteerID},
			bson.M{"$set": bson.M{"is_active": false, "updated_at": now}})
		return err
	})
}

// HasSupervisor reports whether the volunteer has any active supervision
// record.
func (s *Store) HasSupervisor(ctx context.Context, volunteerID primitive.ObjectID) (bool, error) {
	n, err := s.supervision.CountDocuments(ctx,
		bson.M{"volunteer_id": volunteerID, "is_active": true},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SupervisedBy resolves the volunteer's current supervisor. When several
// supervision records are active the most recently created one wins. Returns
// mongo.ErrNoDocuments when no supervisor is assigned.
func (s *Store) SupervisedBy(ctx context.Context, volunteerID primitive.ObjectID) (models.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var sv models.SupervisorVolunteer
	err := s.supervision.FindOne(ctx,
		bson.M{"volunteer_id": volunteerID, "is_active": true}, opts).Decode(&sv)
	if err != nil {
		return models.User{}, err
	}
	var sup models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": sv.SupervisorID}).Decode(&sup); err != nil {
		return models.User{}, err
	}
	return sup, nil
}

// MadeContactWithAllCasesIn reports whether the volunteer logged a contact
// attempt on every one of their active cases within the trailing window.
// An attempt counts even when the youth could not be reached; whether
// contact_made is set does not matter here. A volunteer with no active
// assignments is vacuously current.
func (s *Store) MadeContactWithAllCasesIn(ctx context.Context, volunteerID primitive.ObjectID, days int) (bool, error) {
	caseIDs, err := s.activeCaseIDs(ctx, volunteerID)
	if err != nil {
		return false, err
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	for _, caseID := range caseIDs {
		ok, err := s.contactExists(ctx, volunteerID, caseID, cutoff, bson.M{})
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// MadeRealContactInWindow is the stricter check used on case detail pages:
// it requires an entry with contact_made set on every active case.
func (s *Store) MadeRealContactInWindow(ctx context.Context, volunteerID primitive.ObjectID, days int) (bool, error) {
	caseIDs, err := s.activeCaseIDs(ctx, volunteerID)
	if err != nil {
		return false, err
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	for _, caseID := range caseIDs {
		ok, err := s.contactExists(ctx, volunteerID, caseID, cutoff, bson.M{"contact_made": true})
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *Store) activeCaseIDs(ctx context.Context, volunteerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cur, err := s.assignments.Find(ctx,
		bson.M{"volunteer_id": volunteerID, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.CaseAssignment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.CaseID)
	}
	return ids, nil
}

// contactExists checks the inclusive window [cutoff, now]. Future-dated
// entries never satisfy recency.
func (s *Store) contactExists(ctx context.Context, volunteerID, caseID primitive.ObjectID, cutoff time.Time, extra bson.M) (bool, error) {
	filter := bson.M{
		"creator_id":  volunteerID,
		"case_id":     caseID,
		"occurred_at": bson.M{"$gte": cutoff, "$lte": time.Now().UTC()},
	}
	for k, v := range extra {
		filter[k] = v
	}
	n, err := s.contacts.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// WithNoSupervisor returns the organization's volunteers that have no active
// supervision record, sorted by folded name. The volunteer's own active flag
// is not part of the filter: deactivated volunteers without a supervisor are
// included.
func (s *Store) WithNoSupervisor(ctx context.Context, orgID primitive.ObjectID) ([]models.User, error) {
	supervised, err := s.supervision.Distinct(ctx, "volunteer_id",
		bson.M{"organization_id": orgID, "is_active": true})
	if err != nil {
		return nil, err
	}
	filter := bson.M{
		"organization_id": orgID,
		"role":            models.RoleVolunteer,
	}
	if len(supervised) > 0 {
		filter["_id"] = bson.M{"$nin": supervised}
	}
	opts := options.Find().SetSort(bson.D{{Key: "full_name_ci", Value: 1}})
	cur, err := s.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
