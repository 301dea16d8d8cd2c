// internal/app/features/cases/assignments.go
package cases

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleAssign puts a volunteer on the case. The volunteer must be
// active and belong to the case's organization.
// POST /cases/{id}/assign
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/cases")
		return
	}

	vid, err := primitive.ObjectIDFromHex(strings.TrimSpace(r.FormValue("volunteerID")))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Pick a volunteer.", "/cases/"+cid.Hex()+"/view")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cs, ok := h.loadCase(ctx, w, r, cid)
	if !ok {
		return
	}

	vol, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/cases/"+cid.Hex()+"/view")
		return
	}
	if !vol.Active {
		h.ErrLog.LogBadRequest(w, r, "assign inactive volunteer", nil,
			"Inactive volunteers cannot be assigned to cases.", "/cases/"+cid.Hex()+"/view")
		return
	}
	if vol.OrganizationID == nil || *vol.OrganizationID != cs.OrganizationID {
		h.ErrLog.LogForbidden(w, r, "cross-org assignment attempt", nil,
			"The volunteer must belong to the case's organization.", "/cases/"+cid.Hex()+"/view")
		return
	}

	held, err := h.Assignments.HasActiveForVolunteerAndCase(ctx, vid, cid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assignment check failed", err, "A database error occurred.", "/cases")
		return
	}
	if held {
		http.Redirect(w, r, "/cases/"+cid.Hex()+"/view", http.StatusSeeOther)
		return
	}

	if _, err := h.Assignments.Assign(ctx, vid, cid, cs.OrganizationID); err != nil {
		h.ErrLog.LogServerError(w, r, "assign volunteer failed", err, "Unable to assign the volunteer.", "/cases")
		return
	}

	h.Log.Info("volunteer assigned to case",
		zap.String("case_id", cid.Hex()),
		zap.String("volunteer_id", vid.Hex()))
	http.Redirect(w, r, "/cases/"+cid.Hex()+"/view", http.StatusSeeOther)
}

// HandleUnassign retires an assignment on the case.
// POST /cases/{id}/unassign
func (h *Handler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/cases")
		return
	}

	aid, err := primitive.ObjectIDFromHex(strings.TrimSpace(r.FormValue("assignmentID")))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad assignment id", err, "Invalid assignment.", "/cases/"+cid.Hex()+"/view")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, ok := h.loadCase(ctx, w, r, cid); !ok {
		return
	}

	if err := h.Assignments.Unassign(ctx, aid); err != nil {
		h.ErrLog.LogServerError(w, r, "unassign volunteer failed", err, "Unable to remove the assignment.", "/cases")
		return
	}

	h.Log.Info("volunteer unassigned from case",
		zap.String("case_id", cid.Hex()),
		zap.String("assignment_id", aid.Hex()))
	http.Redirect(w, r, "/cases/"+cid.Hex()+"/view", http.StatusSeeOther)
}
