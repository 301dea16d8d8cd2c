// internal/app/features/cases/view.go
package cases

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/paging"
	"github.com/dalemusser/advocatehub/internal/app/system/status"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeView renders a case's detail page: assignments, the contact log,
// and fund requests.
// GET /cases/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	cid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad case id", err, "Invalid case.", "/cases")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cs, ok := h.loadCase(ctx, w, r, cid)
	if !ok {
		return
	}

	data := viewData{
		ID:            cs.ID.Hex(),
		CaseNumber:    cs.CaseNumber,
		YouthInitials: cs.YouthInitials,
		Status:        cs.Status,
		StatusOpen:    cs.Status == status.Active,
		CanManage:     authz.IsAdmin(r) || authz.IsSupervisor(r),
	}
	formutil.SetBase(&data.Base, r, "Case "+cs.CaseNumber, "/cases")
	if r.URL.Query().Get("submitted") == "1" {
		data.Notice = "Fund request submitted."
	}

	if org, err := h.Orgs.GetByID(ctx, cs.OrganizationID); err == nil {
		data.OrgName = org.Name
	} else {
		h.Log.Warn("organization lookup failed", zap.Error(err))
	}

	assignments, err := h.Assignments.ActiveForCase(ctx, cid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assignments lookup failed", err, "A database error occurred.", "/cases")
		return
	}
	assigned := make(map[primitive.ObjectID]bool, len(assignments))
	for _, a := range assignments {
		assigned[a.VolunteerID] = true
		row := assignmentRow{AssignmentID: a.ID, VolunteerID: a.VolunteerID, Active: a.IsActive}
		if vol, err := h.Users.GetVolunteerByID(ctx, a.VolunteerID); err == nil {
			row.VolunteerName = vol.FullName
		}
		data.Assignments = append(data.Assignments, row)
	}

	if _, _, uid, ok := authz.UserCtx(r); ok && authz.IsVolunteer(r) {
		data.CanLogContact = assigned[uid] && data.StatusOpen
	}

	contacts, err := h.Contacts.ListForCase(ctx, cid)
	if err != nil {
		h.Log.Warn("contact log lookup failed", zap.Error(err))
	}
	creatorNames := make(map[primitive.ObjectID]string)
	for _, cc := range contacts {
		if _, seen := creatorNames[cc.CreatorID]; !seen {
			if u, err := h.Users.GetByID(ctx, cc.CreatorID); err == nil {
				creatorNames[cc.CreatorID] = u.FullName
			}
		}
		data.Contacts = append(data.Contacts, contactRow{
			OccurredAt:   cc.OccurredAt,
			CreatorName:  creatorNames[cc.CreatorID],
			ContactMade:  cc.ContactMade,
			ContactTypes: cc.ContactTypes,
			DurationMins: cc.DurationMins,
			Notes:        cc.Notes,
		})
	}

	if data.CanManage {
		frs, err := h.FundRequests.ListForCase(ctx, cid)
		if err != nil {
			h.Log.Warn("fund request list lookup failed", zap.Error(err))
		}
		for _, fr := range frs {
			data.FundRequests = append(data.FundRequests, fundRequestRow{
				ID:        fr.ID,
				Reference: fr.Reference,
				Amount:    fr.PaymentAmount,
				Payee:     fr.PayeeName,
				Status:    fr.Status,
				CreatedAt: fr.CreatedAt,
			})
		}

		// Assignable volunteers: active, same org, not already on the case.
		vols, err := h.Users.ListByOrgAndRole(ctx, cs.OrganizationID, models.RoleVolunteer, "", paging.LimitPlusOne())
		if err != nil {
			h.Log.Warn("volunteer list lookup failed", zap.Error(err))
		}
		for _, v := range vols {
			if !v.Active || assigned[v.ID] {
				continue
			}
			data.Volunteers = append(data.Volunteers, orgOption{ID: v.ID, Name: v.FullName})
		}
	}

	templates.Render(w, r, "case_view", data)
}

// loadCase fetches the case and enforces who may see it: admins always,
// supervisors within their org, volunteers only when actively assigned.
// It renders the error response itself when access is denied.
func (h *Handler) loadCase(ctx context.Context, w http.ResponseWriter, r *http.Request, cid primitive.ObjectID) (models.Case, bool) {
	cs, err := h.Cases.GetByID(ctx, cid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "case not found", err, "Case not found.", "/cases")
		return models.Case{}, false
	}

	if authz.IsAdmin(r) {
		return cs, true
	}

	orgID, ok := authz.OrgCtx(r)
	if !ok || cs.OrganizationID != orgID {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return models.Case{}, false
	}

	if authz.IsVolunteer(r) {
		_, _, uid, ok := authz.UserCtx(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return models.Case{}, false
		}
		held, err := h.Assignments.HasActiveForVolunteerAndCase(ctx, uid, cid)
		if err != nil || !held {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return models.Case{}, false
		}
	}

	return cs, true
}
