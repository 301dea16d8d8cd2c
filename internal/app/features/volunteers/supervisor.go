// internal/app/features/volunteers/supervisor.go
package volunteers

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleAssignSupervisor sets the volunteer's current supervisor. Any
// earlier supervision record is retired so exactly one stays active.
// POST /volunteers/{id}/supervisor
func (h *Handler) HandleAssignSupervisor(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/volunteers")
		return
	}
	if !h.mayManage(w, r, vid) {
		return
	}

	supHex := strings.TrimSpace(r.FormValue("supervisorID"))
	supID, err := primitive.ObjectIDFromHex(supHex)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad supervisor id", err, "Pick a supervisor.", "/volunteers/"+vid.Hex()+"/view")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vol, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/volunteers")
		return
	}
	sup, err := h.Users.GetSupervisorByID(ctx, supID)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "supervisor not found", err, "Supervisor not found.", "/volunteers/"+vid.Hex()+"/view")
		return
	}

	// Supervision links never cross organizations.
	if vol.OrganizationID == nil || sup.OrganizationID == nil || *vol.OrganizationID != *sup.OrganizationID {
		h.ErrLog.LogForbidden(w, r, "cross-org supervision attempt", nil,
			"Supervisor and volunteer must belong to the same organization.", "/volunteers/"+vid.Hex()+"/view")
		return
	}

	if _, err := h.Supervision.Assign(ctx, supID, vid, *vol.OrganizationID); err != nil {
		h.ErrLog.LogServerError(w, r, "assign supervisor failed", err, "Unable to assign the supervisor.", "/volunteers")
		return
	}

	h.Log.Info("supervisor assigned",
		zap.String("volunteer_id", vid.Hex()),
		zap.String("supervisor_id", supID.Hex()))
	http.Redirect(w, r, "/volunteers/"+vid.Hex()+"/view", http.StatusSeeOther)
}

// HandleRemoveSupervisor retires the volunteer's active supervision records.
// POST /volunteers/{id}/supervisor/remove
func (h *Handler) HandleRemoveSupervisor(w http.ResponseWriter, r *http.Request) {
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

	err = h.Supervision.Unassign(ctx, vid)
	if err == mongo.ErrNoDocuments {
		// Already unsupervised; nothing to undo.
		http.Redirect(w, r, "/volunteers/"+vid.Hex()+"/view", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "remove supervisor failed", err, "Unable to remove the supervisor.", "/volunteers")
		return
	}

	h.Log.Info("supervisor removed", zap.String("volunteer_id", vid.Hex()))
	http.Redirect(w, r, "/volunteers/"+vid.Hex()+"/view", http.StatusSeeOther)
}
