// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/dalemusser/advocatehub/internal/app/features/authgoogle"
	casesfeature "github.com/dalemusser/advocatehub/internal/app/features/cases"
	dashboardfeature "github.com/dalemusser/advocatehub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/advocatehub/internal/app/features/errors"
	fundrequestsfeature "github.com/dalemusser/advocatehub/internal/app/features/fundrequests"
	healthfeature "github.com/dalemusser/advocatehub/internal/app/features/health"
	homefeature "github.com/dalemusser/advocatehub/internal/app/features/home"
	loginfeature "github.com/dalemusser/advocatehub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/advocatehub/internal/app/features/logout"
	organizationsfeature "github.com/dalemusser/advocatehub/internal/app/features/organizations"
	supervisorsfeature "github.com/dalemusser/advocatehub/internal/app/features/supervisors"
	volunteersfeature "github.com/dalemusser/advocatehub/internal/app/features/volunteers"
	oauthstate "github.com/dalemusser/advocatehub/internal/app/store/oauthstate"
	userstore "github.com/dalemusser/advocatehub/internal/app/store/users"
	"github.com/dalemusser/advocatehub/internal/app/system/auth"
	"github.com/dalemusser/advocatehub/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. AdvocateHub initializes the template
// engine, applies session middleware, and mounts feature routers for public
// pages, authentication, dashboards, and the management areas:
// organizations, supervisors, volunteers, and cases (with fund requests
// nested under cases).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// LoadSessionUser fetches fresh user data on each request so role
	// changes and deactivations take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	m := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	if googleEnabled {
		googleHandler := authgooglefeature.NewHandler(
			deps.MongoDatabase, sessionMgr, errLog,
			oauthstate.New(deps.MongoDatabase),
			appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
			logger)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
	}

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Role-based dashboards
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, appCfg.ContactWindowDays, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Organization management
	orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler, sessionMgr))

	// People management
	supervisorsHandler := supervisorsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/supervisors", supervisorsfeature.Routes(supervisorsHandler, sessionMgr))

	volunteersHandler := volunteersfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, errLog, appCfg.ContactWindowDays, logger)
	r.Mount("/volunteers", volunteersfeature.Routes(volunteersHandler, sessionMgr))

	// Cases, with fund requests nested under each case
	fundRequestsHandler := fundrequestsfeature.NewHandler(
		deps.MongoDatabase, errLog, m,
		appCfg.SiteName, appCfg.BaseURL, appCfg.FundRequestNotifyEmail,
		logger)
	casesHandler := casesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/cases", casesfeature.Routes(casesHandler, fundRequestsHandler, sessionMgr))

	return r, nil
}
