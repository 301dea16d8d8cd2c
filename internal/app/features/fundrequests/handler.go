// internal/app/features/fundrequests/handler.go
package fundrequests

import (
	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	casestore "github.com/dalemusser/advocatehub/internal/app/store/cases"
	fundrequeststore "github.com/dalemusser/advocatehub/internal/app/store/fundrequests"
	"github.com/dalemusser/advocatehub/internal/app/system/mailer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the fund request submission form tied to a case.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	Cases    *casestore.Store
	Requests *fundrequeststore.Store
	Mailer   *mailer.Mailer

	// SiteName and BaseURL feed the notification email; NotifyTo is the
	// staff address that receives it.
	SiteName string
	BaseURL  string
	NotifyTo string
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, m *mailer.Mailer, siteName, baseURL, notifyTo string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		ErrLog:   errLog,
		Cases:    casestore.New(db),
		Requests: fundrequeststore.New(db),
		Mailer:   m,
		SiteName: siteName,
		BaseURL:  baseURL,
		NotifyTo: notifyTo,
	}
}
