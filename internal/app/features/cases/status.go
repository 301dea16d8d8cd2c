// internal/app/features/cases/status.go
package cases

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleClose marks the case closed.
// POST /cases/{id}/close
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Closed, "case closed")
}

// HandleReopen returns a closed case to active.
// POST /cases/{id}/reopen
func (h *Handler) HandleReopen(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Active, "case reopened")
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, st, logMsg string) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, ok := h.loadCase(ctx, w, r, cid); !ok {
		return
	}

	if err := h.Cases.SetStatus(ctx, cid, st); err != nil {
		h.ErrLog.LogServerError(w, r, "set case status failed", err, "Unable to update the case.", "/cases")
		return
	}

	h.Log.Info(logMsg, zap.String("case_id", cid.Hex()))
	http.Redirect(w, r, "/cases/"+cid.Hex()+"/view", http.StatusSeeOther)
}
