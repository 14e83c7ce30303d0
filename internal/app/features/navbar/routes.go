// internal/app/features/navbar/routes.go
package navbar

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/navbar", h.ServeNavbar)
}

// MountAdminRoutes mounts the admin save endpoints. POST and PUT share the
// same wholesale upsert.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Post("/navbar", h.HandleSave)
	r.Put("/navbar", h.HandleSave)
}
