// internal/app/store/oauthstate/oauthstatestore.go

// Package oauthstate persists short-lived OAuth state tokens so the
// callback can verify the flow started here. Tokens are single use:
// validation deletes them.
package oauthstate

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

type stateDoc struct {
	State     string    `bson:"state"`
	ReturnURL string    `bson:"return_url,omitempty"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("oauth_states")}
}

// Save stores a state token with its return URL and expiry.
func (s *Store) Save(ctx context.Context, state, returnURL string, expiresAt time.Time) error {
	_, err := s.c.InsertOne(ctx, stateDoc{
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

// Validate consumes a state token. It reports whether the token existed
// and had not expired, and returns the saved return URL.
func (s *Store) Validate(ctx context.Context, state string) (returnURL string, valid bool, err error) {
	var doc stateDoc
	err = s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if time.Now().UTC().After(doc.ExpiresAt) {
		return "", false, nil
	}
	return doc.ReturnURL, true, nil
}
