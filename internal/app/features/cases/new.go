// internal/app/features/cases/new.go
package cases

import (
	"context"
	"net/http"
	"strings"

	casestore "github.com/dalemusser/advocatehub/internal/app/store/cases"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeNew renders the "Add Case" form.
// GET /cases/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var data formData
	formutil.SetBase(&data.Base, r, "Add Case", "/cases")
	if err := h.fillOrgPicker(ctx, r, &data, query.Get(r, "org")); err != nil {
		h.ErrLog.LogServerError(w, r, "org picker load failed", err, "A database error occurred.", "/cases")
		return
	}

	templates.Render(w, r, "case_new", data)
}

// HandleCreate processes the Add Case form POST. Case numbers are unique
// within an organization, compared case-insensitively.
// POST /cases
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/cases")
		return
	}

	number := strings.TrimSpace(r.FormValue("case_number"))
	initials := strings.TrimSpace(r.FormValue("youth_initials"))
	orgHex := strings.TrimSpace(r.FormValue("orgID"))

	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
		orgHex = orgID.Hex()
	}

	echo := formData{CaseNumber: number, YouthInitials: initials, OrgHex: orgHex}

	switch {
	case number == "":
		h.reRenderNew(w, r, echo, "Case number is required.")
		return
	case initials == "":
		h.reRenderNew(w, r, echo, "Youth initials are required.")
		return
	case orgHex == "":
		h.reRenderNew(w, r, echo, "Pick an organization.")
		return
	}

	orgID, err := primitive.ObjectIDFromHex(orgHex)
	if err != nil {
		h.reRenderNew(w, r, echo, "Pick a valid organization.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cs, err := h.Cases.Create(ctx, models.Case{
		CaseNumber:     number,
		YouthInitials:  initials,
		OrganizationID: orgID,
	})
	if err == casestore.ErrDuplicateCaseNumber {
		h.reRenderNew(w, r, echo, "A case with this number already exists in the organization.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create case failed", err, "Unable to create the case.", "/cases")
		return
	}

	http.Redirect(w, r, "/cases/"+cs.ID.Hex()+"/view", http.StatusSeeOther)
}

func (h *Handler) reRenderNew(w http.ResponseWriter, r *http.Request, data formData, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	formutil.SetBase(&data.Base, r, "Add Case", "/cases")
	data.SetError(msg)
	if err := h.fillOrgPicker(ctx, r, &data, data.OrgHex); err != nil {
		h.Log.Warn("org picker reload failed")
	}
	templates.Render(w, r, "case_new", data)
}

func (h *Handler) fillOrgPicker(ctx context.Context, r *http.Request, data *formData, selected string) error {
	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok {
			return nil
		}
		data.OrgLocked = true
		data.OrgHex = orgID.Hex()
		if org, err := h.Orgs.GetByID(ctx, orgID); err == nil {
			data.OrgName = org.Name
		}
		return nil
	}

	if selected != "" {
		if oid, err := primitive.ObjectIDFromHex(selected); err == nil {
			if org, err := h.Orgs.GetByID(ctx, oid); err == nil {
				data.OrgLocked = true
				data.OrgHex = selected
				data.OrgName = org.Name
				return nil
			}
		}
	}

	orgs, err := h.Orgs.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, o := range orgs {
		data.Orgs = append(data.Orgs, orgOption{ID: o.ID, Name: o.Name})
	}
	return nil
}
