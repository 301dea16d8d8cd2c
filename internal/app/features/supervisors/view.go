// internal/app/features/supervisors/view.go
package supervisors

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeView renders a supervisor's detail page with the roster of
// volunteers they actively supervise.
// GET /supervisors/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	sid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad supervisor id", err, "Invalid supervisor.", "/supervisors")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetSupervisorByID(ctx, sid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "supervisor not found", err, "Supervisor not found.", "/supervisors")
		return
	}

	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok || u.OrganizationID == nil || *u.OrganizationID != orgID {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
	}

	data := viewData{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
		Active:   u.Active,
	}
	formutil.SetBase(&data.Base, r, u.FullName, "/supervisors")

	if u.OrganizationID != nil {
		if org, err := h.Orgs.GetByID(ctx, *u.OrganizationID); err == nil {
			data.OrgName = org.Name
		}
	}

	links, err := h.Supervision.ActiveForSupervisor(ctx, sid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "supervision roster lookup failed", err, "A database error occurred.", "/supervisors")
		return
	}
	for _, link := range links {
		vol, err := h.Users.GetVolunteerByID(ctx, link.VolunteerID)
		if err != nil {
			continue
		}
		data.Volunteers = append(data.Volunteers, supervisedRow{
			ID:       vol.ID,
			FullName: vol.FullName,
			Email:    vol.Email,
			Active:   vol.Active,
		})
	}

	templates.Render(w, r, "supervisor_view", data)
}
