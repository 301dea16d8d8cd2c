// internal/app/features/organizations/handler.go
package organizations

import (
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Organizations.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Orgs   *organizationstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
		Orgs:   organizationstore.New(db),
	}
}
