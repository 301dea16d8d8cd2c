// internal/app/features/volunteers/new.go
package volunteers

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeNew renders the "Add Volunteer" form. Supervisors are locked to
// their own organization; admins pick one.
// GET /volunteers/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var data formData
	formutil.SetBase(&data.Base, r, "Add Volunteer", "/volunteers")

	if err := h.fillOrgPicker(ctx, r, &data, query.Get(r, "org")); err != nil {
		h.ErrLog.LogServerError(w, r, "org picker load failed", err, "A database error occurred.", "/volunteers")
		return
	}

	templates.Render(w, r, "volunteer_new", data)
}

// HandleCreate processes the Add Volunteer form POST.
// POST /volunteers
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/volunteers")
		return
	}

	full := normalize.Name(r.FormValue("full_name"))
	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	orgHex := strings.TrimSpace(r.FormValue("orgID"))

	// Supervisors may only create volunteers in their own org.
	if !authz.IsAdmin(r) {
		orgID, ok := authz.OrgCtx(r)
		if !ok {
			http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
			return
		}
		orgHex = orgID.Hex()
	}

	echo := formData{FullName: full, Email: email, OrgHex: orgHex}

	switch {
	case full == "":
		h.reRenderNew(w, r, echo, "Full name is required.")
		return
	case email == "":
		h.reRenderNew(w, r, echo, "Email is required.")
		return
	case len(password) < 8:
		h.reRenderNew(w, r, echo, "Password must be at least 8 characters.")
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

	u, err := h.Users.Create(ctx, models.User{
		FullName:       full,
		Email:          email,
		Role:           models.RoleVolunteer,
		AuthMethod:     "password",
		OrganizationID: &orgID,
	})
	if err == userstore.ErrDuplicateEmail {
		h.reRenderNew(w, r, echo, "A user with this email already exists.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create volunteer failed", err, "Unable to create the volunteer.", "/volunteers")
		return
	}

	if err := h.Users.SetPassword(ctx, u.ID, password); err != nil {
		h.ErrLog.LogServerError(w, r, "set volunteer password failed", err, "Volunteer created, but setting the password failed.", "/volunteers")
		return
	}

	http.Redirect(w, r, "/volunteers/"+u.ID.Hex()+"/view", http.StatusSeeOther)
}

func (h *Handler) reRenderNew(w http.ResponseWriter, r *http.Request, data formData, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	formutil.SetBase(&data.Base, r, "Add Volunteer", "/volunteers")
	data.SetError(msg)
	if err := h.fillOrgPicker(ctx, r, &data, data.OrgHex); err != nil {
		h.Log.Warn("org picker reload failed")
	}
	templates.Render(w, r, "volunteer_new", data)
}

// fillOrgPicker locks the form to the caller's org (supervisors) or to a
// preselected org, otherwise loads the picker options (admins).
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
