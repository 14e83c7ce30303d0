// internal/app/features/contactinfo/handler.go
package contactinfo

import (
	"net/http"

	contactinfostore "github.com/brightforge/studiohub/internal/app/store/contactinfo"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxHeading = 200
	maxEmail   = 254
	maxURL     = 500
)

const cacheKey = "contactinfo"

// Handler owns the contact info endpoints.
type Handler struct {
	Store *contactinfostore.Store
	Cache ttlcache.Cache
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, cache, and logger.
func NewHandler(store *contactinfostore.Store, cache ttlcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Cache: cache, Log: logger}
}

// ServeContactInfo handles GET /api/contact (public, cached). Defaults are
// served when nothing is stored, so this never 404s.
func (h *Handler) ServeContactInfo(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(cacheKey); ok {
		metrics.CacheHit()
		apiutil.OK(w, map[string]any{"contact": cached})
		return
	}
	metrics.CacheMiss()

	info, err := h.Store.Get(r.Context())
	if err != nil {
		h.Log.Error("fetch contact info", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	h.Cache.Set(cacheKey, info)
	apiutil.OK(w, map[string]any{"contact": info})
}

// HandleSave handles POST and PUT /api/admin/contact. Wholesale replacement,
// same as navbar: omitted fields are cleared, not kept.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	info := buildContent(fields)
	if info.Email != "" && !inputval.IsValidEmail(info.Email) {
		apiutil.BadRequest(w, "invalid email address")
		return
	}

	saved, err := h.Store.Upsert(r.Context(), info)
	if err != nil {
		h.Log.Error("save contact info", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"contact": saved})
}

func buildContent(fields map[string]any) models.ContactInfo {
	var info models.ContactInfo

	if s, ok := inputval.String(fields["heading"], maxHeading); ok {
		info.Heading = s
	}
	if s, ok := inputval.String(fields["subheading"], maxHeading); ok {
		info.Subheading = s
	}
	if s, ok := inputval.String(fields["email"], maxEmail); ok {
		info.Email = s
	}
	if v, ok := fields["socials"].(map[string]any); ok {
		if s, ok := inputval.String(v["twitter"], maxURL); ok {
			info.Socials.Twitter = s
		}
		if s, ok := inputval.String(v["instagram"], maxURL); ok {
			info.Socials.Instagram = s
		}
		if s, ok := inputval.String(v["linkedin"], maxURL); ok {
			info.Socials.LinkedIn = s
		}
	}
	return info
}
