// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before the rest of startup proceeds.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"users", mongo.IndexModel{
			Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "role", Value: 1}, {Key: "full_name_ci", Value: 1}},
		}},
		{"organizations", mongo.IndexModel{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"cases", mongo.IndexModel{
			Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "case_number_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"case_assignments", mongo.IndexModel{
			Keys: bson.D{{Key: "volunteer_id", Value: 1}, {Key: "is_active", Value: 1}},
		}},
		{"case_assignments", mongo.IndexModel{
			Keys: bson.D{{Key: "case_id", Value: 1}, {Key: "is_active", Value: 1}},
		}},
		{"supervisor_volunteers", mongo.IndexModel{
			Keys: bson.D{{Key: "volunteer_id", Value: 1}, {Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
		}},
		{"supervisor_volunteers", mongo.IndexModel{
			Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "is_active", Value: 1}},
		}},
		{"case_contacts", mongo.IndexModel{
			Keys: bson.D{{Key: "creator_id", Value: 1}, {Key: "case_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		}},
		{"fund_requests", mongo.IndexModel{
			Keys: bson.D{{Key: "case_id", Value: 1}, {Key: "created_at", Value: -1}},
		}},
		{"oauth_states", mongo.IndexModel{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		}},
	}

	for _, ix := range indexes {
		if _, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, ix.model); err != nil {
			logger.Error("index creation failed", zap.String("collection", ix.collection), zap.Error(err))
			return err
		}
	}

	return nil
}
