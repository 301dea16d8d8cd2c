// internal/app/features/organizations/new.go
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
)

// ServeNew renders the "Add Organization" form.
// GET /organizations/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	var data formData
	formutil.SetBase(&data.Base, r, "Add Organization", "/organizations")
	templates.Render(w, r, "org_new", data)
}

// HandleCreate processes the Add Organization form POST.
// POST /organizations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/organizations")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	city := strings.TrimSpace(r.FormValue("city"))
	state := strings.TrimSpace(r.FormValue("state"))
	contact := strings.TrimSpace(r.FormValue("contact_info"))

	if name == "" {
		h.reRenderForm(w, r, "org_new", "Add Organization", formData{
			Name: name, City: city, State: state, ContactInfo: contact,
		}, "Organization name is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err := h.Orgs.Create(ctx, models.Organization{
		Name:        name,
		City:        city,
		State:       state,
		ContactInfo: contact,
	})
	if err == organizationstore.ErrDuplicateOrganization {
		h.reRenderForm(w, r, "org_new", "Add Organization", formData{
			Name: name, City: city, State: state, ContactInfo: contact,
		}, "An organization with this name already exists.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create organization failed", err, "Unable to create the organization.", "/organizations")
		return
	}

	http.Redirect(w, r, "/organizations", http.StatusSeeOther)
}

func (h *Handler) reRenderForm(w http.ResponseWriter, r *http.Request, tmpl, title string, data formData, msg string) {
	formutil.SetBase(&data.Base, r, title, "/organizations")
	data.SetError(msg)
	templates.Render(w, r, tmpl, data)
}
