// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the login endpoint. The parent router applies rate
// limiting but not auth.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.HandleLogin)
}
