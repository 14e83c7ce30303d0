// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the health endpoint used by load balancers and uptime checks.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a Handler bound to the Mongo client and logger.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// ServeHealth handles GET /health. Database reachability is part of being
// healthy: a process that cannot reach Mongo serves nothing useful.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping)
	defer cancel()

	if err := h.Client.Ping(ctx, nil); err != nil {
		h.Log.Error("health check: mongo ping failed", zap.Error(err))
		apiutil.Error(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	apiutil.OK(w, map[string]any{"status": "ok"})
}
