// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/members", h.ServePublicList)
}

// MountAdminRoutes mounts the admin CRUD endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/members", h.ServeList)
	r.Post("/members", h.HandleCreate)
	r.Put("/members", h.HandleUpdate)
	r.Delete("/members", h.HandleDelete)
}
