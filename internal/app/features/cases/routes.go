// internal/app/features/cases/routes.go
package cases

import (
	"github.com/dalemusser/advocatehub/internal/app/features/fundrequests"
	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all case routes, with the fund request form nested under
// each case. Volunteers can browse their own cases and log contacts;
// creating cases and managing assignments is for supervisors and admins.
func Routes(h *Handler, fr *fundrequests.Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)

		pr.Get("/{id}/contacts/new", h.ServeNewContact)
		pr.Post("/{id}/contacts", h.HandleLogContact)

		pr.Get("/{id}/fund_requests/new", fr.ServeNew)
		pr.Post("/{id}/fund_requests", fr.HandleSubmit)
	})

	r.Group(func(mr chi.Router) {
		mr.Use(sm.RequireSignedIn)
		mr.Use(sm.RequireRole("admin", "supervisor"))

		mr.Get("/new", h.ServeNew)
		mr.Post("/", h.HandleCreate)

		mr.Post("/{id}/assign", h.HandleAssign)
		mr.Post("/{id}/unassign", h.HandleUnassign)

		mr.Post("/{id}/close", h.HandleClose)
		mr.Post("/{id}/reopen", h.HandleReopen)
	})

	return r
}
