// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type homeData struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
}

// ServeRoot handles GET / - the public landing page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)

	data := homeData{
		Title:      "Welcome",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
	}

	templates.Render(w, r, "home", data)
}
