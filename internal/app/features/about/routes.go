// internal/app/features/about/routes.go
package about

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/about", h.ServeAbout)
}

// MountAdminRoutes mounts the admin mutation endpoint.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Put("/about", h.HandleUpdate)
}
