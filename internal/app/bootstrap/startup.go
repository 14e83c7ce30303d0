// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	servicestore "github.com/brightforge/studiohub/internal/app/store/services"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// Hero and about content are seeded out of band (they describe the site, not
// the app), but the services aggregate gets an empty versioned document here
// so admin writes have a target on a fresh database.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := servicestore.New(deps.MongoDatabase).EnsureDefault(ctx); err != nil {
		logger.Error("seed services document", zap.Error(err))
		return err
	}
	return nil
}
