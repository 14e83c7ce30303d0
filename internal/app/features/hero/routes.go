// internal/app/features/hero/routes.go
package hero

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/hero", h.ServeHero)
}

// MountAdminRoutes mounts the admin mutation endpoint. Auth and rate limiting
// are applied by the parent router.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Put("/hero", h.HandleUpdate)
}
