// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the health endpoint at the router root.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/health", h.ServeHealth)
}
