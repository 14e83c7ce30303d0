// internal/app/features/contactform/routes.go
package contactform

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the contact form submission endpoint. Rate
// limiting applies via the parent router; no auth.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Post("/contact", h.HandleSubmit)
}
