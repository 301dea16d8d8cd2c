// internal/app/features/supervisors/list.go
package supervisors

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/paging"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList renders the supervisors table. Supervisors see their own
// organization; admins see all supervisors or one org via ?org=.
// GET /supervisors
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	after := query.Get(r, "after")
	start := paging.ParseStart(r)

	var (
		rows        []models.User
		err         error
		selectedOrg string
	)

	if authz.IsAdmin(r) {
		selectedOrg = query.Get(r, "org")
		if selectedOrg != "" {
			oid, idErr := primitive.ObjectIDFromHex(selectedOrg)
			if idErr != nil {
				h.ErrLog.LogBadRequest(w, r, "bad org filter", idErr, "Invalid organization filter.", "/supervisors")
				return
			}
			rows, err = h.Users.ListByOrgAndRole(ctx, oid, models.RoleSupervisor, after, paging.LimitPlusOne())
		} else {
			rows, err = h.Users.ListByRole(ctx, models.RoleSupervisor, after, paging.LimitPlusOne())
		}
	} else {
		orgID, ok := authz.OrgCtx(r)
		if !ok {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
		rows, err = h.Users.ListByOrgAndRole(ctx, orgID, models.RoleSupervisor, after, paging.LimitPlusOne())
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list supervisors failed", err, "A database error occurred.", "/dashboard")
		return
	}

	res := paging.TrimPage(&rows, "", after)

	var data listData
	formutil.SetBase(&data.Base, r, "Supervisors", "/dashboard")
	data.SelectedOrg = selectedOrg
	data.HasNext = res.HasNext

	orgNames := make(map[primitive.ObjectID]string)
	for _, u := range rows {
		row := supervisorRow{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Active:   u.Active,
		}
		if u.OrganizationID != nil {
			oid := *u.OrganizationID
			if _, seen := orgNames[oid]; !seen {
				if org, err := h.Orgs.GetByID(ctx, oid); err == nil {
					orgNames[oid] = org.Name
				}
			}
			row.OrgName = orgNames[oid]
		}
		data.Rows = append(data.Rows, row)
	}
	data.Shown = len(data.Rows)

	if data.HasNext && len(rows) > 0 {
		data.NextCursor = text.Fold(rows[len(rows)-1].FullName)
	}
	rng := paging.ComputeRange(start, data.Shown)
	data.RangeStart = rng.Start
	data.RangeEnd = rng.End

	templates.Render(w, r, "supervisor_list", data)
}
