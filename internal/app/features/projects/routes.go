// internal/app/features/projects/routes.go
package projects

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts the public read endpoint.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/projects", h.ServePublicList)
}

// MountAdminRoutes mounts the admin CRUD and reorder endpoints.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/projects", h.ServeList)
	r.Post("/projects", h.HandleCreate)
	r.Put("/projects", h.HandleUpdate)
	r.Delete("/projects", h.HandleDelete)
	r.Post("/projects/reorder", h.HandleReorder)
}
