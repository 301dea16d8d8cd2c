// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (ports, TLS,
// logging, timeouts); AppConfig is everything specific to AdvocateHub.
// The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: advocatehub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty for Mailpit)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// SiteName appears in email subjects and page titles.
	SiteName string

	// BaseURL is used to build absolute links in notification emails and
	// OAuth callback URLs.
	BaseURL string

	// FundRequestNotifyEmail is the staff address that receives fund
	// request notifications.
	FundRequestNotifyEmail string

	// Google OAuth configuration. Both blank disables the Google sign-in
	// option.
	GoogleClientID     string
	GoogleClientSecret string

	// ContactWindowDays is the trailing window for the volunteer
	// contact-recency indicator.
	ContactWindowDays int
}
