// internal/app/features/services/routes.go
package services

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/services", h.ServeServices)
}

// MountAdminRoutes mounts the admin endpoints. The admin read skips the
// cache so edits show up immediately in the panel.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/services", h.ServeAdminServices)
	r.Post("/services", h.HandleCreate)
	r.Put("/services", h.HandleUpdate)
	r.Delete("/services", h.HandleDelete)
}
