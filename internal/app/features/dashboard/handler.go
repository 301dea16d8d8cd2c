// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"strings"

	supervisionstore "github.com/dalemusser/advocatehub/internal/app/store/supervision"
	volunteerstore "github.com/dalemusser/advocatehub/internal/app/store/volunteers"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	Volunteers  *volunteerstore.Store
	Supervision *supervisionstore.Store

	// ContactWindowDays is the trailing window for the volunteer
	// contact-recency indicator.
	ContactWindowDays int
}

func NewHandler(client *mongo.Client, db *mongo.Database, contactWindowDays int, logger *zap.Logger) *Handler {
	return &Handler{
		DB:                db,
		Log:               logger,
		Volunteers:        volunteerstore.New(client, db),
		Supervision:       supervisionstore.New(db),
		ContactWindowDays: contactWindowDays,
	}
}

// ServeDashboard dispatches to the role-specific view.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	role, _, _, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		h.ServeAdmin(w, r)
	case "supervisor":
		h.ServeSupervisor(w, r)
	case "volunteer":
		h.ServeVolunteer(w, r)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
