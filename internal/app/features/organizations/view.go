// internal/app/features/organizations/view.go
package organizations

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/formutil"
	"github.com/dalemusser/advocatehub/internal/app/system/timeouts"
	"github.com/dalemusser/advocatehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeView renders one organization's detail page.
// GET /organizations/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad organization id", err, "Invalid organization.", "/organizations")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "organization not found", err, "Organization not found.", "/organizations")
		return
	}

	users := userstore.New(h.DB)
	supCount, _ := users.CountByOrgAndRole(ctx, oid, models.RoleSupervisor)
	volCount, _ := users.CountByOrgAndRole(ctx, oid, models.RoleVolunteer)

	data := viewData{
		ID:              org.ID.Hex(),
		Name:            org.Name,
		City:            org.City,
		State:           org.State,
		ContactInfo:     org.ContactInfo,
		Status:          org.Status,
		SupervisorCount: supCount,
		VolunteerCount:  volCount,
	}
	formutil.SetBase(&data.Base, r, org.Name, "/organizations")

	templates.Render(w, r, "org_view", data)
}
