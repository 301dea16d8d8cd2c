package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoURIEnv names the environment variable that points store and handler
// tests at a MongoDB instance. When it is unset those tests skip, so the
// suite still passes on machines without a local mongod.
const mongoURIEnv = "ADVOCATEHUB_TEST_MONGO_URI"

// TestContext returns a context with the standard test timeout.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the test MongoDB instance and returns a database
// unique to this test. The database is dropped and the client disconnected
// during test cleanup.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(mongoURIEnv)
	if uri == "" {
		t.Skipf("%s not set; skipping test that needs MongoDB", mongoURIEnv)
	}

	ctx, cancel := TestContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to test mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping test mongo: %v", err)
	}

	dbName := fmt.Sprintf("advocatehub_test_%s", primitive.NewObjectID().Hex())
	db := client.Database(dbName)

	t.Cleanup(func() {
		ctx, cancel := TestContext()
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// EnsureUniqueIndexes creates the unique indexes that duplicate detection
// in the stores depends on. Tests that exercise duplicate handling call
// this; the rest skip it to keep setup fast.
func EnsureUniqueIndexes(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx, cancel := TestContext()
	defer cancel()

	unique := []struct {
		collection string
		keys       bson.D
	}{
		{"users", bson.D{{Key: "email", Value: 1}}},
		{"organizations", bson.D{{Key: "name_ci", Value: 1}}},
		{"cases", bson.D{{Key: "organization_id", Value: 1}, {Key: "case_number_ci", Value: 1}}},
	}
	for _, ix := range unique {
		_, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    ix.keys,
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			t.Fatalf("create unique index on %s: %v", ix.collection, err)
		}
	}
}
