// internal/app/features/dashboard/common.go
package dashboard

import "time"

// dashboardTimeout bounds the count queries behind each dashboard view.
const dashboardTimeout = 5 * time.Second

// baseDashboardData contains fields common to all dashboard views.
type baseDashboardData struct {
	Title       string
	IsLoggedIn  bool
	Role        string
	UserName    string
	CurrentPath string
}
