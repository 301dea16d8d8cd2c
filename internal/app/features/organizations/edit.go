// internal/app/features/organizations/edit.go
package organizations

import (
	"context"
	"net/http"
	"strings"

	organizationstore "github.com/dalemusser/advocatehub/internal/app/store/organizations"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeEdit renders the edit form for an organization.
// GET /organizations/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad organization id", err, "Invalid organization.", "/organizations")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "organization not found", err, "Organization not found.", "/organizations")
		return
	}

	data := formData{
		ID:          org.ID.Hex(),
		Name:        org.Name,
		City:        org.City,
		State:       org.State,
		ContactInfo: org.ContactInfo,
	}
	formutil.SetBase(&data.Base, r, "Edit "+org.Name, "/organizations")

	templates.Render(w, r, "org_edit", data)
}

// HandleEdit processes the edit form POST.
// POST /organizations/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad organization id", err, "Invalid organization.", "/organizations")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/organizations")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	city := strings.TrimSpace(r.FormValue("city"))
	state := strings.TrimSpace(r.FormValue("state"))
	contact := strings.TrimSpace(r.FormValue("contact_info"))

	if name == "" {
		data := formData{ID: oid.Hex(), Name: name, City: city, State: state, ContactInfo: contact}
		formutil.SetBase(&data.Base, r, "Edit Organization", "/organizations")
		data.SetError("Organization name is required.")
		templates.Render(w, r, "org_edit", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Orgs.Update(ctx, oid, models.Organization{
		Name:        name,
		City:        city,
		State:       state,
		ContactInfo: contact,
	})
	if err == organizationstore.ErrDuplicateOrganization {
		data := formData{ID: oid.Hex(), Name: name, City: city, State: state, ContactInfo: contact}
		formutil.SetBase(&data.Base, r, "Edit Organization", "/organizations")
		data.SetError("An organization with this name already exists.")
		templates.Render(w, r, "org_edit", data)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update organization failed", err, "Unable to save changes.", "/organizations")
		return
	}

	http.Redirect(w, r, "/organizations/"+oid.Hex()+"/view", http.StatusSeeOther)
}
