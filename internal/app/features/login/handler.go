// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/advocatehub/internal/app/features/errors"
	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/dalemusser/advocatehub/internal/app/system/normalize"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	Users         *userstore.Store
	GoogleEnabled bool
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		Users:         userstore.New(db),
		GoogleEnabled: googleEnabled,
	}
}

type loginFormData struct {
	Title         string
	IsLoggedIn    bool
	Role          string
	UserName      string
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

// ServeForm handles GET /login.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	// Already signed in? Straight to the dashboard.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := loginFormData{
		Title:         "Sign in",
		ReturnURL:     safeReturnURL(query.Get(r, "return")),
		GoogleEnabled: h.GoogleEnabled,
	}
	templates.Render(w, r, "login", data)
}

// HandleSubmit handles POST /login with email and password.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := safeReturnURL(r.FormValue("return"))

	if email == "" || password == "" {
		h.reRender(w, r, email, returnURL, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		// Same message whether the account is missing or the password is
		// wrong, so the form does not leak which emails exist.
		h.reRender(w, r, email, returnURL, "Invalid email or password.")
		return
	}
	if !u.Active {
		h.reRender(w, r, email, returnURL, "This account has been deactivated.")
		return
	}
	if !h.Users.CheckPassword(u, password) {
		h.reRender(w, r, email, returnURL, "Invalid email or password.")
		return
	}

	su := &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.OrganizationID != nil {
		su.OrganizationID = u.OrganizationID.Hex()
	}

	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "login: session save failed", err, "Unable to sign you in.", "/login")
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", su.ID),
		zap.String("role", su.Role))

	dest := returnURL
	if dest == "" {
		dest = "/dashboard"
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) reRender(w http.ResponseWriter, r *http.Request, email, returnURL, msg string) {
	data := loginFormData{
		Title:         "Sign in",
		Error:         msg,
		Email:         email,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleEnabled,
	}
	templates.Render(w, r, "login", data)
}

// safeReturnURL only accepts same-site relative paths, so the login form
// cannot be used as an open redirect.
func safeReturnURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	return raw
}
