// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/brightforge/studiohub/internal/app/features/about"
	contactformfeature "github.com/brightforge/studiohub/internal/app/features/contactform"
	contactinfofeature "github.com/brightforge/studiohub/internal/app/features/contactinfo"
	healthfeature "github.com/brightforge/studiohub/internal/app/features/health"
	herofeature "github.com/brightforge/studiohub/internal/app/features/hero"
	loginfeature "github.com/brightforge/studiohub/internal/app/features/login"
	logoutfeature "github.com/brightforge/studiohub/internal/app/features/logout"
	membersfeature "github.com/brightforge/studiohub/internal/app/features/members"
	navbarfeature "github.com/brightforge/studiohub/internal/app/features/navbar"
	projectsfeature "github.com/brightforge/studiohub/internal/app/features/projects"
	servicesfeature "github.com/brightforge/studiohub/internal/app/features/services"
	uploadfeature "github.com/brightforge/studiohub/internal/app/features/upload"
	aboutstore "github.com/brightforge/studiohub/internal/app/store/about"
	contactinfostore "github.com/brightforge/studiohub/internal/app/store/contactinfo"
	counterstore "github.com/brightforge/studiohub/internal/app/store/counters"
	herostore "github.com/brightforge/studiohub/internal/app/store/hero"
	memberstore "github.com/brightforge/studiohub/internal/app/store/members"
	navbarstore "github.com/brightforge/studiohub/internal/app/store/navbar"
	projectstore "github.com/brightforge/studiohub/internal/app/store/projects"
	servicestore "github.com/brightforge/studiohub/internal/app/store/services"
	"github.com/brightforge/studiohub/internal/app/system/adminauth"
	"github.com/brightforge/studiohub/internal/app/system/mailer"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ratelimit"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// Route layout:
//
//	/health               liveness + Mongo ping
//	/metrics              Prometheus scrape endpoint
//	/static/*             pre-compressed static assets
//	/api/...              public reads + login/logout + contact form
//	/api/admin/...        mutations, rate-limited then key-guarded
//
// The admin chain is rate limit first, auth second: burning limiter budget
// must not depend on whether the key was valid, or an attacker could probe
// keys for free.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := adminauth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	metrics.Init()

	guard := adminauth.NewGuard(appCfg.AdminKey, sessionMgr, logger)
	limiter := ratelimit.New(appCfg.RateLimitRequests, appCfg.RateLimitWindow)
	cache := ttlcache.NewMemory(appCfg.ContentCacheTTL)

	mail := mailer.New(appCfg.MailSMTPHost, appCfg.MailSMTPPort, appCfg.MailSMTPUser,
		appCfg.MailSMTPPass, appCfg.MailFrom, appCfg.MailFromName, logger)

	// Stores
	db := deps.MongoDatabase
	counters := counterstore.New(db)
	heroStore := herostore.New(db)
	aboutStore := aboutstore.New(db)
	navbarStore := navbarstore.New(db)
	contactStore := contactinfostore.New(db)
	projectStore := projectstore.New(db, counters)
	memberStore := memberstore.New(db, counters)
	serviceStore := servicestore.New(db)

	// Feature handlers
	heroHandler := herofeature.NewHandler(heroStore, cache, logger)
	aboutHandler := aboutfeature.NewHandler(aboutStore, cache, logger)
	navbarHandler := navbarfeature.NewHandler(navbarStore, cache, logger)
	contactInfoHandler := contactinfofeature.NewHandler(contactStore, cache, logger)
	projectsHandler := projectsfeature.NewHandler(projectStore, logger)
	membersHandler := membersfeature.NewHandler(memberStore, logger)
	servicesHandler := servicesfeature.NewHandler(serviceStore, cache, logger)
	uploadHandler := uploadfeature.NewHandler(uploadfeature.NewClient(appCfg.UploadURL, appCfg.UploadPreset), logger)
	contactFormHandler := contactformfeature.NewHandler(mail, appCfg.ContactTo, appCfg.SiteName, logger)
	loginHandler := loginfeature.NewHandler(appCfg.AdminKey, sessionMgr, logger)
	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	healthHandler.MountRoutes(r)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", adminauth.KeyHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		// Public reads
		heroHandler.MountPublicRoutes(api)
		aboutHandler.MountPublicRoutes(api)
		navbarHandler.MountPublicRoutes(api)
		contactInfoHandler.MountPublicRoutes(api)
		projectsHandler.MountPublicRoutes(api)
		membersHandler.MountPublicRoutes(api)
		servicesHandler.MountPublicRoutes(api)

		// Rate-limited but unauthenticated: login probing and the public
		// contact form share the same per-IP budget as admin calls.
		api.Group(func(limited chi.Router) {
			limited.Use(limiter.Middleware)
			loginHandler.MountRoutes(limited)
			logoutHandler.MountRoutes(limited)
			contactFormHandler.MountPublicRoutes(limited)
		})

		// Admin surface: rate limit before auth.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(limiter.Middleware)
			admin.Use(guard.Require)

			heroHandler.MountAdminRoutes(admin)
			aboutHandler.MountAdminRoutes(admin)
			navbarHandler.MountAdminRoutes(admin)
			contactInfoHandler.MountAdminRoutes(admin)
			projectsHandler.MountAdminRoutes(admin)
			membersHandler.MountAdminRoutes(admin)
			servicesHandler.MountAdminRoutes(admin)
			uploadHandler.MountAdminRoutes(admin)
		})
	})

	return r, nil
}
