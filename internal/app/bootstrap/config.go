// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/brightforge/studiohub/internal/app/system/ratelimit"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for StudioHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_key, etc.
//   - Environment variables: STUDIOHUB_MONGO_URI, STUDIOHUB_ADMIN_KEY, etc.
//   - Command-line flags: --mongo_uri, --admin_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "studiohub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Admin authentication. No default on purpose: an unset key keeps the
	// admin surface closed rather than falling back to a guessable value.
	{Name: "admin_key", Default: "", Desc: "Shared secret for admin API access (unset disables admin writes)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "studiohub-admin", Desc: "Admin session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Rate limiting
	{Name: "rate_limit_requests", Default: 30, Desc: "Admin requests allowed per window per client IP"},
	{Name: "rate_limit_window", Default: "60s", Desc: "Rate limit window length"},

	// Public content cache
	{Name: "content_cache_ttl", Default: "30s", Desc: "TTL for cached public content responses"},

	// Image hosting service
	{Name: "upload_url", Default: "", Desc: "Image host upload endpoint (blank disables uploads)"},
	{Name: "upload_preset", Default: "studiohub", Desc: "Unsigned upload preset name on the image host"},

	// Email/SMTP configuration for the public contact form
	{Name: "mail_smtp_host", Default: "", Desc: "SMTP server host (blank disables the contact form)"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@brightforge.dev", Desc: "From email address"},
	{Name: "mail_from_name", Default: "BrightForge", Desc: "From display name"},
	{Name: "contact_to", Default: "", Desc: "Recipient for contact form submissions"},

	{Name: "site_name", Default: "BrightForge", Desc: "Site name used in outbound email"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// STUDIOHUB_* environment variables, and command-line flags, merging with
// precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STUDIOHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminKey: appValues.String("admin_key"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		RateLimitRequests: appValues.Int("rate_limit_requests"),
		RateLimitWindow:   appValues.Duration("rate_limit_window", ratelimit.DefaultWindow),

		ContentCacheTTL: appValues.Duration("content_cache_ttl", ttlcache.DefaultTTL),

		UploadURL:    appValues.String("upload_url"),
		UploadPreset: appValues.String("upload_preset"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),
		ContactTo:    appValues.String("contact_to"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is checked early so a typo fails startup instead of the
// first request. A missing admin key is allowed (the admin surface fails
// closed per request), but it gets a loud warning in prod.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AdminKey == "" {
		logger.Warn("admin_key is not set; all admin mutations will be rejected with 500")
	} else if len(appCfg.AdminKey) < 16 {
		logger.Warn("admin_key is short; 32+ random characters recommended",
			zap.Int("length", len(appCfg.AdminKey)))
	}

	if appCfg.RateLimitRequests < 1 {
		return fmt.Errorf("rate_limit_requests must be at least 1, got %d", appCfg.RateLimitRequests)
	}
	if appCfg.RateLimitWindow < time.Second {
		return fmt.Errorf("rate_limit_window must be at least 1s, got %s", appCfg.RateLimitWindow)
	}

	return nil
}
