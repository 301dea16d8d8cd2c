// internal/app/features/supervisors/routes.go
package supervisors

import (
	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all supervisor routes. Creating supervisor accounts is
// admin work; supervisors can browse their org's roster.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin", "supervisor"))

		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(sm.RequireSignedIn)
		ar.Use(sm.RequireRole("admin"))

		ar.Get("/new", h.ServeNew)
		ar.Post("/", h.HandleCreate)
	})

	return r
}
