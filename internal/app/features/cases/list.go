// internal/app/features/cases/list.go
package cases

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList renders the case list. Volunteers see the cases they hold an
// active assignment on; supervisors see their organization; admins pick
// an organization via ?org=.
// GET /cases
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var data listData
	formutil.SetBase(&data.Base, r, "Cases", "/dashboard")

	if authz.IsVolunteer(r) {
		h.serveVolunteerList(ctx, w, r, data)
		return
	}

	orgID, ok := authz.OrgCtx(r)
	if authz.IsAdmin(r) {
		orgHex := query.Get(r, "org")
		if orgHex == "" {
			h.ErrLog.LogBadRequest(w, r, "case list without org", nil,
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

	rows, err := h.Cases.ListByOrg(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list cases failed", err, "A database error occurred.", "/dashboard")
		return
	}
	if org, err := h.Orgs.GetByID(ctx, orgID); err == nil {
		data.OrgName = org.Name
	}
	for _, cs := range rows {
		data.Rows = append(data.Rows, caseRow{
			ID:            cs.ID,
			CaseNumber:    cs.CaseNumber,
			YouthInitials: cs.YouthInitials,
			Status:        cs.Status,
		})
	}

	templates.Render(w, r, "case_list", data)
}

// serveVolunteerList shows only the cases the signed-in volunteer is
// actively assigned to.
func (h *Handler) serveVolunteerList(ctx context.Context, w http.ResponseWriter, r *http.Request, data listData) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	assignments, err := h.Assignments.ActiveForVolunteer(ctx, uid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assignments lookup failed", err, "A database error occurred.", "/dashboard")
		return
	}
	caseIDs := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		caseIDs = append(caseIDs, a.CaseID)
	}

	var rows []models.Case
	if len(caseIDs) > 0 {
		rows, err = h.Cases.GetByIDs(ctx, caseIDs)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "cases lookup failed", err, "A database error occurred.", "/dashboard")
			return
		}
	}
	for _, cs := range rows {
		data.Rows = append(data.Rows, caseRow{
			ID:            cs.ID,
			CaseNumber:    cs.CaseNumber,
			YouthInitials: cs.YouthInitials,
			Status:        cs.Status,
		})
	}

	templates.Render(w, r, "case_list", data)
}
