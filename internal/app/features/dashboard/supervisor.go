// internal/app/features/dashboard/supervisor.go
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

type supervisorData struct {
	baseDashboardData

	VolunteersCount   int64
	CasesCount        int64
	FundRequestsCount int64

	// SupervisedCount is this supervisor's own volunteer roster size.
	SupervisedCount int
	// UnsupervisedCount is how many volunteers in the org have no supervisor.
	UnsupervisedCount int
}

func (h *Handler) ServeSupervisor(w http.ResponseWriter, r *http.Request) {
	role, uname, uid, signedIn := authz.UserCtx(r)
	orgID, hasOrg := authz.OrgCtx(r)
	if !hasOrg {
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()

	counts := metricsstore.FetchOrgCounts(ctx, h.DB, orgID)

	data := supervisorData{
		baseDashboardData: baseDashboardData{
			Title:       "Supervisor Dashboard",
			IsLoggedIn:  signedIn,
			Role:        role,
			UserName:    uname,
			CurrentPath: httpnav.CurrentPath(r),
		},
		VolunteersCount:   counts.Volunteers,
		CasesCount:        counts.Cases,
		FundRequestsCount: counts.FundRequests,
	}

	if roster, err := h.Supervision.ActiveForSupervisor(ctx, uid); err == nil {
		data.SupervisedCount = len(roster)
	} else {
		h.Log.Warn("supervision roster lookup failed", zap.Error(err))
	}
	if unsup, err := h.Volunteers.WithNoSupervisor(ctx, orgID); err == nil {
		data.UnsupervisedCount = len(unsup)
	} else {
		h.Log.Warn("unsupervised volunteers lookup failed", zap.Error(err))
	}

	h.Log.Debug("supervisor dashboard served", zap.String("user", uname))

	templates.Render(w, r, "supervisor_dashboard", data)
}
