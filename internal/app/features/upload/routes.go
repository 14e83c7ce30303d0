// internal/app/features/upload/routes.go
package upload

import "github.com/go-chi/chi/v5"

// MountAdminRoutes mounts the upload endpoint under the admin router.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Post("/upload", h.HandleUpload)
}
