// internal/app/features/cases/handler.go
package cases

import (
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/advocatehub/internal/app/store/caseassignments"
	contactstore "github.com/dalemusser/advocatehub/internal/app/store/casecontacts"
	casestore "github.com/dalemusser/advocatehub/internal/app/store/cases"
	fundrequeststore "github.com/dalemusser/advocatehub/internal/app/store/fundrequests"
	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB           *mongo.Database
	Log          *zap.Logger
	ErrLog       *uierrors.ErrorLogger
	Cases        *casestore.Store
	Assignments  *assignmentstore.Store
	Contacts     *contactstore.Store
	FundRequests *fundrequeststore.Store
	Users        *userstore.Store
	Orgs         *organizationstore.Store
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		ErrLog:       errLog,
		Cases:        casestore.New(db),
		Assignments:  assignmentstore.New(db),
		Contacts:     contactstore.New(db),
		FundRequests: fundrequeststore.New(db),
		Users:        userstore.New(db),
		Orgs:         organizationstore.New(db),
	}
}
