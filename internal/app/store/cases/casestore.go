// internal/app/store/cases/casestore.go
package casestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateCaseNumber = errors.New("a case with this number already exists in the organization")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("cases")}
}

func (s *Store) Create(ctx context.Context, cs models.Case) (models.Case, error) {
	now := time.Now().UTC()
	cs.ID = primitive.NewObjectID()
	cs.CaseNumberCI = text.Fold(cs.CaseNumber)
	if cs.Status == "" {
		cs.Status = status.Active
	}
	cs.CreatedAt = now
	cs.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, cs); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Case{}, ErrDuplicateCaseNumber
		}
		return models.Case{}, err
	}
	return cs, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Case, error) {
	var cs models.Case
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cs); err != nil {
		return models.Case{}, err
	}
	return cs, nil
}

// GetByIDs loads multiple cases by their ObjectIDs.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Case, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cases []models.Case
	if err := cur.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// ListByOrg returns an organization's cases sorted by folded case number.
func (s *Store) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]models.Case, error) {
	opts := options.Find().SetSort(bson.D{{Key: "case_number_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"organization_id": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cases []models.Case
	if err := cur.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// SetStatus moves a case between active and closed.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st string) error {
	if !status.IsValidCase(st) {
		return errors.New(`case status must be "active" or "closed"`)
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     st,
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
