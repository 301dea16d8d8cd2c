// internal/app/features/volunteers/handler.go
package volunteers

import (
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/advocatehub/internal/app/store/caseassignments"
	casestore "github.com/dalemusser/advocatehub/internal/app/store/cases"
	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	supervisionstore "github.com/dalemusser/advocatehub/internal/app/store/supervision"
	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	volunteerstore "github.com/dalemusser/advocatehub/internal/app/store/volunteers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Volunteers. The lifecycle and
// supervision operations go through the volunteer aggregate store; simple
// reads use the per-collection stores.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
	Users       *userstore.Store
	Orgs        *organizationstore.Store
	Volunteers  *volunteerstore.Store
	Supervision *supervisionstore.Store
	Assignments *assignmentstore.Store
	Cases       *casestore.Store

	// ContactWindowDays is the trailing window for the contact-recency
	// indicator on volunteer pages.
	ContactWindowDays int
}

func NewHandler(client *mongo.Client, db *mongo.Database, errLog *uierrors.ErrorLogger, contactWindowDays int, logger *zap.Logger) *Handler {
	return &Handler{
		DB:                db,
		Log:               logger,
		ErrLog:            errLog,
		Users:             userstore.New(db),
		Orgs:              organizationstore.New(db),
		Volunteers:        volunteerstore.New(client, db),
		Supervision:       supervisionstore.New(db),
		Assignments:       assignmentstore.New(db),
		Cases:             casestore.New(db),
		ContactWindowDays: contactWindowDays,
	}
}
