// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"

	metricsstore "github.com/dalemusser/advocatehub/internal/app/store/metrics"
	"github.com/dalemusser/advocatehub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type adminData struct {
	baseDashboardData

	OrganizationsCount int64
	SupervisorsCount   int64
	VolunteersCount    int64
	CasesCount         int64
	FundRequestsCount  int64
}

func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	role, uname, _, signedIn := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	counts := metricsstore.FetchDashboardCounts(ctx, h.DB)

	data := adminData{
		baseDashboardData: baseDashboardData{
			Title:       "Admin Dashboard",
			IsLoggedIn:  signedIn,
			Role:        role,
			UserName:    uname,
			CurrentPath: httpnav.CurrentPath(r),
		},
		OrganizationsCount: counts.Organizations,
		SupervisorsCount:   counts.Supervisors,
		VolunteersCount:    counts.Volunteers,
		CasesCount:         counts.Cases,
		FundRequestsCount:  counts.FundRequests,
	}

	h.Log.Debug("admin dashboard served", zap.String("user", uname))

	templates.Render(w, r, "admin_dashboard", data)
}
