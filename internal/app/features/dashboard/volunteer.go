// internal/app/features/dashboard/volunteer.go
package dashboard

import (
	"context"
	"net/http"

	assignmentstore "github.com/dalemusser/advocatehub/internal/app/store/caseassignments"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type volunteerData struct {
	baseDashboardData

	ActiveCases int
	// ContactCurrent is true when the volunteer has logged a contact
	// attempt on every active case within the trailing window.
	ContactCurrent    bool
	ContactWindowDays int

	SupervisorName string
	HasSupervisor  bool
}

func (h *Handler) ServeVolunteer(w http.ResponseWriter, r *http.Request) {
	role, uname, uid, signedIn := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	data := volunteerData{
		baseDashboardData: baseDashboardData{
			Title:       "My Dashboard",
			IsLoggedIn:  signedIn,
			Role:        role,
			UserName:    uname,
			CurrentPath: httpnav.CurrentPath(r),
		},
		ContactWindowDays: h.ContactWindowDays,
	}

	if rows, err := assignmentstore.New(h.DB).ActiveForVolunteer(ctx, uid); err == nil {
		data.ActiveCases = len(rows)
	}

	current, err := h.Volunteers.MadeContactWithAllCasesIn(ctx, uid, h.ContactWindowDays)
	if err != nil {
		h.Log.Warn("contact recency check failed", zap.Error(err))
	} else {
		data.ContactCurrent = current
	}

	sup, err := h.Volunteers.SupervisedBy(ctx, uid)
	switch {
	case err == nil:
		data.HasSupervisor = true
		data.SupervisorName = sup.FullName
	case err == mongo.ErrNoDocuments:
		// No supervisor assigned; the view shows a notice.
	default:
		h.Log.Warn("supervisor lookup failed", zap.Error(err))
	}

	templates.Render(w, r, "volunteer_dashboard", data)
}
