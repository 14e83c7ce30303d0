// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS); everything specific to StudioHub lives here and is loaded
// in LoadConfig from env vars, config files, or flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// AdminKey is the shared secret guarding every admin mutation. Empty
	// means the admin surface fails closed with 500s rather than opening up.
	AdminKey string

	// Session management for the admin panel login flow
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)

	// Rate limiting for the admin surface
	RateLimitRequests int           // requests allowed per window per IP
	RateLimitWindow   time.Duration // fixed window length

	// Public content cache
	ContentCacheTTL time.Duration

	// Image hosting service (uploads disabled when URL is blank)
	UploadURL    string
	UploadPreset string

	// Email/SMTP configuration for the public contact form
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string
	ContactTo    string // where contact form submissions are delivered

	// SiteName shows up in outbound email subjects and bodies
	SiteName string
}
