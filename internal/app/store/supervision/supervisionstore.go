// internal/app/store/supervision/supervisionstore.go
package supervisionstore

import (
	"context"
	"time"

	"github.com/dalemusser/advocatehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages supervisor_volunteers join records. A volunteer's current
// supervisor is the active record with the most recent created_at.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("supervisor_volunteers")}
}

// Assign creates an active supervision record. Any existing active record
// for the volunteer is retired first so only one remains current.
func (s *Store) Assign(ctx context.Context, supervisorID, volunteerID, orgID primitive.ObjectID) (models.SupervisorVolunteer, error) {
	now := time.Now().UTC()
	_, err := s.c.UpdateMany(ctx,
		bson.M{"volunteer_id": volunteerID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return models.SupervisorVolunteer{}, err
	}
	sv := models.SupervisorVolunteer{
		ID:             primitive.NewObjectID(),
		SupervisorID:   supervisorID,
		VolunteerID:    volunteerID,
		OrganizationID: orgID,
		IsActive:       true,
		CreatedAt:      now,
	}
	if _, err := s.c.InsertOne(ctx, sv); err != nil {
		return models.SupervisorVolunteer{}, err
	}
	return sv, nil
}

// Unassign retires the volunteer's active supervision records.
func (s *Store) Unassign(ctx context.Context, volunteerID primitive.ObjectID) error {
	res, err := s.c.UpdateMany(ctx,
		bson.M{"volunteer_id": volunteerID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Current returns the volunteer's current supervision record, or
// mongo.ErrNoDocuments when none is active.
func (s *Store) Current(ctx context.Context, volunteerID primitive.ObjectID) (models.SupervisorVolunteer, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var sv models.SupervisorVolunteer
	err := s.c.FindOne(ctx, bson.M{"volunteer_id": volunteerID, "is_active": true}, opts).Decode(&sv)
	if err != nil {
		return models.SupervisorVolunteer{}, err
	}
	return sv, nil
}

// ActiveForSupervisor lists the active supervision records held by a supervisor.
func (s *Store) ActiveForSupervisor(ctx context.Context, supervisorID primitive.ObjectID) ([]models.SupervisorVolunteer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"supervisor_id": supervisorID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.SupervisorVolunteer
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
