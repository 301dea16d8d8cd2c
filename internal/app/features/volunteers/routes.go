// internal/app/features/volunteers/routes.go
package volunteers

import (
	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all volunteer routes. Volunteer management is for admins
// and supervisors; volunteers see their own data via the dashboard and
// case pages instead.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin", "supervisor"))

		pr.Get("/", h.ServeList)
		pr.Get("/unsupervised", h.ServeUnsupervised)

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		pr.Get("/{id}/view", h.ServeView)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		pr.Post("/{id}/activate", h.HandleActivate)
		pr.Post("/{id}/deactivate", h.HandleDeactivate)

		pr.Post("/{id}/supervisor", h.HandleAssignSupervisor)
		pr.Post("/{id}/supervisor/remove", h.HandleRemoveSupervisor)
	})

	return r
}
