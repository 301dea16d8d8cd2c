// internal/app/features/supervisors/handler.go
package supervisors

import (
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	supervisionstore "github.com/dalemusser/advocatehub/internal/app/store/supervision"
	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
	Users       *userstore.Store
	Orgs        *organizationstore.Store
	Supervision *supervisionstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      errLog,
		Users:       userstore.New(db),
		Orgs:        organizationstore.New(db),
		Supervision: supervisionstore.New(db),
	}
}
