// internal/app/store/fundrequests/fundrequeststore.go
package fundrequeststore

import (
	"context"
	"time"

	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("fund_requests")}
}

// Create inserts a new submission. The reference and status are assigned
// here; callers supply the form fields only.
func (s *Store) Create(ctx context.Context, fr models.FundRequest) (models.FundRequest, error) {
	now := time.Now().UTC()
	fr.ID = primitive.NewObjectID()
	fr.Reference = uuid.NewString()
	fr.Status = models.FundRequestSubmitted
	fr.CreatedAt = now
	fr.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, fr); err != nil {
		return models.FundRequest{}, err
	}
	return fr, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.FundRequest, error) {
	var fr models.FundRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&fr); err != nil {
		return models.FundRequest{}, err
	}
	return fr, nil
}

// ListForCase returns a case's fund requests, newest first.
func (s *Store) ListForCase(ctx context.Context, caseID primitive.ObjectID) ([]models.FundRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"case_id": caseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.FundRequest
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus moves a request to approved or denied.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st string) error {
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
