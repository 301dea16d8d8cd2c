// internal/app/features/volunteers/view.go
package volunteers

import (
	"context"
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/paging"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeView renders a volunteer's detail page: supervisor, active cases,
// contact recency, and the lifecycle controls.
// GET /volunteers/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/volunteers")
		return
	}

	// Supervisors may only view volunteers in their own org.
	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok || u.OrganizationID == nil || *u.OrganizationID != orgID {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
	}

	data := viewData{
		ID:                u.ID.Hex(),
		FullName:          u.FullName,
		Email:             u.Email,
		Active:            u.Active,
		ContactWindowDays: h.ContactWindowDays,
	}
	formutil.SetBase(&data.Base, r, u.FullName, "/volunteers")

	if u.OrganizationID != nil {
		if org, err := h.Orgs.GetByID(ctx, *u.OrganizationID); err == nil {
			data.OrgName = org.Name
		}
	}

	sup, err := h.Volunteers.SupervisedBy(ctx, vid)
	switch {
	case err == nil:
		data.HasSupervisor = true
		data.SupervisorName = sup.FullName
		data.SupervisorID = sup.ID.Hex()
	case err == mongo.ErrNoDocuments:
		// none assigned
	default:
		h.Log.Warn("supervisor lookup failed", zap.Error(err))
	}

	assignments, err := h.Assignments.ActiveForVolunteer(ctx, vid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assignments lookup failed", err, "A database error occurred.", "/volunteers")
		return
	}
	caseIDs := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		caseIDs = append(caseIDs, a.CaseID)
	}
	if cases, err := h.Cases.GetByIDs(ctx, caseIDs); err == nil {
		for _, cs := range cases {
			data.Cases = append(data.Cases, assignedCase{
				CaseID:        cs.ID,
				CaseNumber:    cs.CaseNumber,
				YouthInitials: cs.YouthInitials,
			})
		}
	} else {
		h.Log.Warn("case lookup failed", zap.Error(err))
	}

	if current, err := h.Volunteers.MadeContactWithAllCasesIn(ctx, vid, h.ContactWindowDays); err == nil {
		data.ContactCurrent = current
	} else {
		h.Log.Warn("contact recency check failed", zap.Error(err))
	}

	// Supervisors in the same org, for the assignment select.
	if u.OrganizationID != nil {
		sups, err := h.Users.ListByOrgAndRole(ctx, *u.OrganizationID, models.RoleSupervisor, "", paging.LimitPlusOne())
		if err != nil {
			h.Log.Warn("supervisor list lookup failed", zap.Error(err))
		}
		for _, s := range sups {
			data.Supervisors = append(data.Supervisors, orgOption{ID: s.ID, Name: s.FullName})
		}
	}

	templates.Render(w, r, "volunteer_view", data)
}
