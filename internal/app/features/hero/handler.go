// internal/app/features/hero/handler.go
package hero

import (
	"net/http"

	herostore "github.com/brightforge/studiohub/internal/app/store/hero"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

// Field bounds for hero content. Headlines are short display strings; the
// description is a paragraph.
const (
	maxHeadline    = 200
	maxDescription = 2000
	maxCTAText     = 100
	maxCTAHref     = 500
)

const cacheKey = "hero"

// Handler owns the hero content endpoints.
type Handler struct {
	Store *herostore.Store
	Cache ttlcache.Cache
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, cache, and logger.
func NewHandler(store *herostore.Store, cache ttlcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Cache: cache, Log: logger}
}

// ServeHero handles GET /api/hero (public, cached).
func (h *Handler) ServeHero(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(cacheKey); ok {
		metrics.CacheHit()
		apiutil.OK(w, map[string]any{"hero": cached})
		return
	}
	metrics.CacheMiss()

	hero, err := h.Store.Get(r.Context())
	if err == herostore.ErrNotFound {
		h.Log.Warn("hero content requested before seeding")
		apiutil.NotFound(w, "hero content not found")
		return
	}
	if err != nil {
		h.Log.Error("fetch hero content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	h.Cache.Set(cacheKey, hero)
	apiutil.OK(w, map[string]any{"hero": hero})
}

// HandleUpdate handles PUT /api/admin/hero (partial merge). Fields that fail
// validation are dropped from the patch, not rejected.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	patch := buildPatch(fields)

	hero, err := h.Store.Patch(r.Context(), patch)
	if err == herostore.ErrNotFound {
		h.Log.Warn("hero update before seeding")
		apiutil.NotFound(w, "hero content not found")
		return
	}
	if err != nil {
		h.Log.Error("update hero content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"hero": hero})
}

func buildPatch(fields map[string]any) models.HeroPatch {
	var patch models.HeroPatch
	if v, present := fields["headline1"]; present {
		if s, ok := inputval.String(v, maxHeadline); ok {
			patch.Headline1 = &s
		}
	}
	if v, present := fields["headline2"]; present {
		if s, ok := inputval.String(v, maxHeadline); ok {
			patch.Headline2 = &s
		}
	}
	if v, present := fields["description"]; present {
		if s, ok := inputval.String(v, maxDescription); ok {
			patch.Description = &s
		}
	}
	if v, present := fields["primaryCta"]; present {
		patch.PrimaryCTA = buildCTAPatch(v)
	}
	if v, present := fields["secondaryCta"]; present {
		patch.SecondaryCTA = buildCTAPatch(v)
	}
	return patch
}

func buildCTAPatch(v any) *models.CTAPatch {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	var cta models.CTAPatch
	if tv, present := obj["text"]; present {
		if s, ok := inputval.String(tv, maxCTAText); ok {
			cta.Text = &s
		}
	}
	if hv, present := obj["href"]; present {
		if s, ok := inputval.String(hv, maxCTAHref); ok {
			cta.Href = &s
		}
	}
	if cta.Text == nil && cta.Href == nil {
		return nil
	}
	return &cta
}
