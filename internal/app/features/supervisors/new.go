// internal/app/features/supervisors/new.go
package supervisors

import (
	"context"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeNew renders the "Add Supervisor" form.
// GET /supervisors/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var data formData
	formutil.SetBase(&data.Base, r, "Add Supervisor", "/supervisors")
	if err := h.fillOrgs(ctx, &data); err != nil {
		h.ErrLog.LogServerError(w, r, "org picker load failed", err, "A database error occurred.", "/supervisors")
		return
	}

	templates.Render(w, r, "supervisor_new", data)
}

// HandleCreate processes the Add Supervisor form POST.
// POST /supervisors
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/supervisors")
		return
	}

	full := normalize.Name(r.FormValue("full_name"))
	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	orgHex := strings.TrimSpace(r.FormValue("orgID"))

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
		Role:           models.RoleSupervisor,
		AuthMethod:     "password",
		OrganizationID: &orgID,
	})
	if err == userstore.ErrDuplicateEmail {
		h.reRenderNew(w, r, echo, "A user with this email already exists.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create supervisor failed", err, "Unable to create the supervisor.", "/supervisors")
		return
	}

	if err := h.Users.SetPassword(ctx, u.ID, password); err != nil {
		h.ErrLog.LogServerError(w, r, "set supervisor password failed", err, "Supervisor created, but setting the password failed.", "/supervisors")
		return
	}

	http.Redirect(w, r, "/supervisors/"+u.ID.Hex()+"/view", http.StatusSeeOther)
}

func (h *Handler) reRenderNew(w http.ResponseWriter, r *http.Request, data formData, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	formutil.SetBase(&data.Base, r, "Add Supervisor", "/supervisors")
	data.SetError(msg)
	if err := h.fillOrgs(ctx, &data); err != nil {
		h.Log.Warn("org picker reload failed")
	}
	templates.Render(w, r, "supervisor_new", data)
}

func (h *Handler) fillOrgs(ctx context.Context, data *formData) error {
	orgs, err := h.Orgs.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, o := range orgs {
		data.Orgs = append(data.Orgs, orgOption{ID: o.ID, Name: o.Name})
	}
	return nil
}
