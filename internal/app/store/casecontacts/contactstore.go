// internal/app/store/casecontacts/contactstore.go
package contactstore

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
	return &Store{c: db.Collection("case_contacts")}
}

func (s *Store) Create(ctx context.Context, cc models.CaseContact) (models.CaseContact, error) {
	now := time.Now().UTC()
	cc.ID = primitive.NewObjectID()
	if cc.OccurredAt.IsZero() {
		cc.OccurredAt = now
	}
	cc.CreatedAt = now
	cc.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, cc); err != nil {
		return models.CaseContact{}, err
	}
	return cc, nil
}

// ListForCase returns a case's contact log, newest first.
func (s *Store) ListForCase(ctx context.Context, caseID primitive.ObjectID) ([]models.CaseContact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"case_id": caseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.CaseContact
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExistsForCreatorAndCaseSince reports whether the creator logged any
// contact attempt on the case within [cutoff, now]. Attempts count
// whether or not contact was made; future-dated entries do not.
func (s *Store) ExistsForCreatorAndCaseSince(ctx context.Context, creatorID, caseID primitive.ObjectID, cutoff time.Time) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"creator_id":  creatorID,
		"case_id":     caseID,
		"occurred_at": bson.M{"$gte": cutoff, "$lte": time.Now().UTC()},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExistsMadeForCreatorAndCaseSince is the stricter variant that only
// counts entries where contact was actually made.
func (s *Store) ExistsMadeForCreatorAndCaseSince(ctx context.Context, creatorID, caseID primitive.ObjectID, cutoff time.Time) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{
		"creator_id":   creatorID,
		"case_id":      caseID,
		"contact_made": true,
		"occurred_at":  bson.M{"$gte": cutoff, "$lte": time.Now().UTC()},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
