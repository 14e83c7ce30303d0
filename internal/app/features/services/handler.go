// internal/app/features/services/handler.go
package services

import (
	"net/http"
	"strconv"

	servicestore "github.com/brightforge/studiohub/internal/app/store/services"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxTitle       = 200
	maxDescription = 2000
	maxCategoryID  = 100
)

const cacheKey = "services"

// Handler owns the services endpoints. All mutations go through the
// version-guarded store, so concurrent admin edits conflict instead of
// silently overwriting each other.
type Handler struct {
	Store *servicestore.Store
	Cache ttlcache.Cache
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, cache, and logger.
func NewHandler(store *servicestore.Store, cache ttlcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Cache: cache, Log: logger}
}

// ServeServices handles GET /api/services (public, cached) and
// GET /api/admin/services (uncached, admin always sees fresh data).
func (h *Handler) ServeServices(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(cacheKey); ok {
		metrics.CacheHit()
		apiutil.OK(w, map[string]any{"services": cached})
		return
	}
	metrics.CacheMiss()

	doc, err := h.Store.Get(r.Context())
	if err == servicestore.ErrNotFound {
		h.Log.Warn("services requested before seeding")
		apiutil.NotFound(w, "services not found")
		return
	}
	if err != nil {
		h.Log.Error("fetch services", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	h.Cache.Set(cacheKey, doc.Categories)
	apiutil.OK(w, map[string]any{"services": doc.Categories})
}

// ServeAdminServices handles GET /api/admin/services without the cache.
func (h *Handler) ServeAdminServices(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Store.Get(r.Context())
	if err == servicestore.ErrNotFound {
		apiutil.NotFound(w, "services not found")
		return
	}
	if err != nil {
		h.Log.Error("fetch services", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	apiutil.OK(w, map[string]any{"services": doc.Categories})
}

// HandleCreate handles POST /api/admin/services: add a service to a category.
// categoryId, title, and description are required. The icon falls back to
// the default when absent or not in the icon set; featured defaults false.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	categoryID, catOK := inputval.String(fields["categoryId"], maxCategoryID)
	title, titleOK := inputval.String(fields["title"], maxTitle)
	description, descOK := inputval.String(fields["description"], maxDescription)
	if !catOK || categoryID == "" || !titleOK || title == "" || !descOK || description == "" {
		apiutil.BadRequest(w, "categoryId, title, and description are required")
		return
	}

	svc := models.Service{
		Title:       title,
		Description: description,
		Icon:        models.DefaultServiceIcon,
	}
	if icon, ok := inputval.String(fields["icon"], maxCategoryID); ok && models.IsValidServiceIcon(icon) {
		svc.Icon = icon
	}
	if featured, ok := inputval.Bool(fields["featured"]); ok {
		svc.Featured = featured
	}

	created, err := h.Store.AddService(r.Context(), categoryID, svc)
	if err == servicestore.ErrNotFound {
		h.Log.Warn("add service to unknown category", zap.String("categoryId", categoryID))
		apiutil.NotFound(w, "category not found")
		return
	}
	if err != nil {
		h.Log.Error("add service", zap.String("categoryId", categoryID), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.Created(w, map[string]any{"service": created})
}

// HandleUpdate handles PUT /api/admin/services. Two modes keyed by query
// parameter: ?serviceId=N edits one service, ?categoryId=slug edits a
// category's title/description.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		serviceID, err := strconv.Atoi(raw)
		if err != nil || serviceID < 1 {
			apiutil.BadRequest(w, "valid serviceId query parameter is required")
			return
		}
		h.updateService(w, r, serviceID)
		return
	}
	if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
		h.updateCategory(w, r, categoryID)
		return
	}
	apiutil.BadRequest(w, "serviceId or categoryId query parameter is required")
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request, serviceID int) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	var patch models.ServicePatch
	if v, present := fields["title"]; present {
		if s, ok := inputval.String(v, maxTitle); ok {
			patch.Title = &s
		}
	}
	if v, present := fields["description"]; present {
		if s, ok := inputval.String(v, maxDescription); ok {
			patch.Description = &s
		}
	}
	if v, present := fields["icon"]; present {
		if s, ok := inputval.String(v, maxCategoryID); ok && models.IsValidServiceIcon(s) {
			patch.Icon = &s
		}
	}
	if v, present := fields["featured"]; present {
		if b, ok := inputval.Bool(v); ok {
			patch.Featured = &b
		}
	}

	updated, err := h.Store.UpdateService(r.Context(), serviceID, patch)
	if err == servicestore.ErrNotFound {
		h.Log.Warn("update for unknown service", zap.Int("serviceId", serviceID))
		apiutil.NotFound(w, "service not found")
		return
	}
	if err != nil {
		h.Log.Error("update service", zap.Int("serviceId", serviceID), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"service": updated})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request, categoryID string) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	var patch models.CategoryPatch
	if v, present := fields["title"]; present {
		if s, ok := inputval.String(v, maxTitle); ok {
			patch.Title = &s
		}
	}
	if v, present := fields["description"]; present {
		if s, ok := inputval.String(v, maxDescription); ok {
			patch.Description = &s
		}
	}

	doc, err := h.Store.UpdateCategory(r.Context(), categoryID, patch)
	if err == servicestore.ErrNotFound {
		h.Log.Warn("update for unknown category", zap.String("categoryId", categoryID))
		apiutil.NotFound(w, "category not found")
		return
	}
	if err != nil {
		h.Log.Error("update category", zap.String("categoryId", categoryID), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"services": doc.Categories})
}

// HandleDelete handles DELETE /api/admin/services?serviceId=N. The service
// is removed from whichever category holds it; emptied categories stay.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("serviceId")
	serviceID, err := strconv.Atoi(raw)
	if raw == "" || err != nil || serviceID < 1 {
		apiutil.BadRequest(w, "valid serviceId query parameter is required")
		return
	}

	err = h.Store.DeleteService(r.Context(), serviceID)
	if err == servicestore.ErrNotFound {
		h.Log.Warn("delete for unknown service", zap.Int("serviceId", serviceID))
		apiutil.NotFound(w, "service not found")
		return
	}
	if err != nil {
		h.Log.Error("delete service", zap.Int("serviceId", serviceID), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, nil)
}
