// internal/app/features/contactinfo/routes.go
package contactinfo

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/contact", h.ServeContactInfo)
}

// MountAdminRoutes mounts the admin save endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Post("/contact", h.HandleSave)
	r.Put("/contact", h.HandleSave)
}
