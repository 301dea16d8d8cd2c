// internal/app/features/volunteers/list.go
package volunteers

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

// ServeList renders the volunteers table. Supervisors see their own
// organization; admins see all volunteers or one org via ?org=.
// GET /volunteers
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
				h.ErrLog.LogBadRequest(w, r, "bad org filter", idErr, "Invalid organization filter.", "/volunteers")
				return
			}
			rows, err = h.Users.ListByOrgAndRole(ctx, oid, models.RoleVolunteer, after, paging.LimitPlusOne())
		} else {
			rows, err = h.Users.ListByRole(ctx, models.RoleVolunteer, after, paging.LimitPlusOne())
		}
	} else {
		orgID, ok := authz.OrgCtx(r)
		if !ok {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
		rows, err = h.Users.ListByOrgAndRole(ctx, orgID, models.RoleVolunteer, after, paging.LimitPlusOne())
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list volunteers failed", err, "A database error occurred.", "/dashboard")
		return
	}

	res := paging.TrimPage(&rows, "", after)

	var data listData
	formutil.SetBase(&data.Base, r, "Volunteers", "/dashboard")
	data.SelectedOrg = selectedOrg
	data.HasNext = res.HasNext

	orgNames := h.orgNameCache(ctx, rows)
	for _, u := range rows {
		row := volunteerRow{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Active:   u.Active,
		}
		if u.OrganizationID != nil {
			row.OrgName = orgNames[*u.OrganizationID]
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

	templates.Render(w, r, "volunteer_list", data)
}

// ServeUnsupervised renders the volunteers in an organization that have no
// active supervisor. The volunteer's own active flag is not considered.
// GET /volunteers/unsupervised
func (h *Handler) ServeUnsupervised(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgID, ok := authz.OrgCtx(r)
	if authz.IsAdmin(r) {
		orgHex := query.Get(r, "org")
		if orgHex == "" {
			h.ErrLog.LogBadRequest(w, r, "unsupervised list without org", nil,
				"Pick an organization first.", "/organizations")
			return
		}
		oid, idErr := primitive.ObjectIDFromHex(orgHex)
		if idErr != nil {
			h.ErrLog.LogBadRequest(w, r, "bad org filter", idErr, "Invalid organization.", "/organizations")
			return
		}
		orgID, ok = oid, true
	}
	if !ok {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return
	}

	vols, err := h.Volunteers.WithNoSupervisor(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "unsupervised volunteers query failed", err, "A database error occurred.", "/volunteers")
		return
	}

	var data unsupervisedData
	formutil.SetBase(&data.Base, r, "Volunteers Without a Supervisor", "/volunteers")
	if org, err := h.Orgs.GetByID(ctx, orgID); err == nil {
		data.OrgName = org.Name
	}
	for _, u := range vols {
		data.Rows = append(data.Rows, volunteerRow{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Active:   u.Active,
		})
	}

	templates.Render(w, r, "volunteer_unsupervised", data)
}

// orgNameCache resolves the org names needed for a page of rows.
func (h *Handler) orgNameCache(ctx context.Context, rows []models.User) map[primitive.ObjectID]string {
	names := make(map[primitive.ObjectID]string)
	for _, u := range rows {
		if u.OrganizationID == nil {
			continue
		}
		if _, seen := names[*u.OrganizationID]; seen {
			continue
		}
		if org, err := h.Orgs.GetByID(ctx, *u.OrganizationID); err == nil {
			names[*u.OrganizationID] = org.Name
		}
	}
	return names
}
