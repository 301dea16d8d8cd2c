// internal/app/store/caseassignments/assignmentstore.go
package assignmentstore

import (
	"context"
	"time"

	"github.com/dalemusser/advocatehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("case_assignments")}
}

// Assign creates an active assignment linking a volunteer to a case.
func (s *Store) Assign(ctx context.Context, volunteerID, caseID, orgID primitive.ObjectID) (models.CaseAssignment, error) {
	now := time.Now().UTC()
	a := models.CaseAssignment{
		ID:             primitive.NewObjectID(),
		VolunteerID:    volunteerID,
		CaseID:         caseID,
		OrganizationID: orgID,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.CaseAssignment{}, err
	}
	return a, nil
}

// Unassign retires a single assignment without touching the volunteer's flag.
func (s *Store) Unassign(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ActiveForVolunteer returns the volunteer's active assignments, newest first.
func (s *Store) ActiveForVolunteer(ctx context.Context, volunteerID primitive.ObjectID) ([]models.CaseAssignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"volunteer_id": volunteerID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.CaseAssignment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ActiveForCase returns the active assignments on a case.
func (s *Store) ActiveForCase(ctx context.Context, caseID primitive.ObjectID) ([]models.CaseAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"case_id": caseID, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.CaseAssignment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// HasActiveForVolunteerAndCase reports whether the volunteer currently
// holds an active assignment on the case.
func (s *Store) HasActiveForVolunteerAndCase(ctx context.Context, volunteerID, caseID primitive.ObjectID) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"volunteer_id": volunteerID,
		"case_id":      caseID,
		"is_active":    true,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
