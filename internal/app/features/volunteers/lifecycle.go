// internal/app/features/volunteers/lifecycle.go
package volunteers

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleActivate turns a volunteer's active flag back on. Assignments
// retired by an earlier deactivation stay retired.
// POST /volunteers/{id}/activate
func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}
	if !h.mayManage(w, r, vid) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Volunteers.Activate(ctx, vid); err != nil {
		h.ErrLog.LogServerError(w, r, "activate volunteer failed", err, "Unable to activate the volunteer.", "/volunteers")
		return
	}

	h.Log.Info("volunteer activated", zap.String("volunteer_id", vid.Hex()))
	http.Redirect(w, r, httpnav.ResolveBackURL(r, "/volunteers/"+vid.Hex()+"/view"), http.StatusSeeOther)
}

// HandleDeactivate turns the volunteer off and retires all of their case
// assignments in one transactional cascade.
// POST /volunteers/{id}/deactivate
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}
	if !h.mayManage(w, r, vid) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Volunteers.Deactivate(ctx, vid); err != nil {
		h.ErrLog.LogServerError(w, r, "deactivate volunteer failed", err, "Unable to deactivate the volunteer.", "/volunteers")
		return
	}

	h.Log.Info("volunteer deactivated", zap.String("volunteer_id", vid.Hex()))
	http.Redirect(w, r, httpnav.ResolveBackURL(r, "/volunteers/"+vid.Hex()+"/view"), http.StatusSeeOther)
}

// mayManage loads the volunteer and enforces the org boundary, rendering
// an error page itself when the caller may not proceed.
func (h *Handler) mayManage(w http.ResponseWriter, r *http.Request, vid primitive.ObjectID) bool {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/volunteers")
		return false
	}
	if !h.sameOrgOrAdmin(r, u) {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return false
	}
	return true
}
