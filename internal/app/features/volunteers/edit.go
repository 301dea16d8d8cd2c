// internal/app/features/volunteers/edit.go
package volunteers

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeEdit renders the edit form for a volunteer's profile.
// GET /volunteers/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/volunteers")
		return
	}
	if !h.sameOrgOrAdmin(r, u) {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return
	}

	data := formData{
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
	}
	formutil.SetBase(&data.Base, r, "Edit "+u.FullName, "/volunteers/"+vid.Hex()+"/view")
	if u.OrganizationID != nil {
		data.OrgLocked = true
		data.OrgHex = u.OrganizationID.Hex()
		if org, err := h.Orgs.GetByID(ctx, *u.OrganizationID); err == nil {
			data.OrgName = org.Name
		}
	}

	templates.Render(w, r, "volunteer_edit", data)
}

// HandleEdit processes the edit form POST. The organization is fixed at
// creation; only name and email change here.
// POST /volunteers/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	vid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad volunteer id", err, "Invalid volunteer.", "/volunteers")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/volunteers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetVolunteerByID(ctx, vid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "volunteer not found", err, "Volunteer not found.", "/volunteers")
		return
	}
	if !h.sameOrgOrAdmin(r, u) {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return
	}

	full := normalize.Name(r.FormValue("full_name"))
	email := normalize.Email(r.FormValue("email"))

	if full == "" || email == "" {
		data := formData{ID: vid.Hex(), FullName: full, Email: email}
		formutil.SetBase(&data.Base, r, "Edit Volunteer", "/volunteers/"+vid.Hex()+"/view")
		data.SetError("Full name and email are required.")
		templates.Render(w, r, "volunteer_edit", data)
		return
	}

	err = h.Users.UpdateProfile(ctx, vid, userstore.Update{FullName: full, Email: email})
	if err == userstore.ErrDuplicateEmail {
		data := formData{ID: vid.Hex(), FullName: full, Email: email}
		formutil.SetBase(&data.Base, r, "Edit Volunteer", "/volunteers/"+vid.Hex()+"/view")
		data.SetError("A user with this email already exists.")
		templates.Render(w, r, "volunteer_edit", data)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update volunteer failed", err, "Unable to save changes.", "/volunteers")
		return
	}

	http.Redirect(w, r, "/volunteers/"+vid.Hex()+"/view", http.StatusSeeOther)
}

// sameOrgOrAdmin reports whether the caller may manage this volunteer.
func (h *Handler) sameOrgOrAdmin(r *http.Request, u *models.User) bool {
	if authz.IsAdmin(r) {
		return true
	}
	orgID, ok := authz.OrgCtx(r)
	return ok && u.OrganizationID != nil && *u.OrganizationID == orgID
}
