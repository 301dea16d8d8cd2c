// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList renders the organizations table.
// GET /organizations
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Orgs.ListActive(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list organizations failed", err, "A database error occurred.", "/dashboard")
		return
	}

	var data listData
	formutil.SetBase(&data.Base, r, "Organizations", "/dashboard")
	for _, o := range orgs {
		data.Rows = append(data.Rows, orgRow{
			ID:     o.ID,
			Name:   o.Name,
			City:   o.City,
			State:  o.State,
			Status: o.Status,
		})
	}

	templates.Render(w, r, "org_list", data)
}
