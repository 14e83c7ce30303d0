// internal/app/features/about/handler.go
package about

import (
	"net/http"

	aboutstore "github.com/brightforge/studiohub/internal/app/store/about"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxLabel     = 200
	maxTitle     = 200
	maxGraphic   = 200
	maxParagraph = 1000 // paragraphs render as raw markup, sanitized not escaped
	maxURL       = 500
)

const cacheKey = "about"

// Handler owns the about content endpoints.
type Handler struct {
	Store *aboutstore.Store
	Cache ttlcache.Cache
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, cache, and logger.
func NewHandler(store *aboutstore.Store, cache ttlcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Cache: cache, Log: logger}
}

// ServeAbout handles GET /api/about (public, cached).
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(cacheKey); ok {
		metrics.CacheHit()
		apiutil.OK(w, map[string]any{"about": cached})
		return
	}
	metrics.CacheMiss()

	about, err := h.Store.Get(r.Context())
	if err == aboutstore.ErrNotFound {
		h.Log.Warn("about content requested before seeding")
		apiutil.NotFound(w, "about content not found")
		return
	}
	if err != nil {
		h.Log.Error("fetch about content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	h.Cache.Set(cacheKey, about)
	apiutil.OK(w, map[string]any{"about": about})
}

// HandleUpdate handles PUT /api/admin/about (partial merge).
//
// Paragraphs are the one field that keeps embedded markup: they pass through
// the HTML sanitizer instead of the escaper because the frontend renders them
// as raw HTML. Every other string field is escaped.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	patch := buildPatch(fields)

	about, err := h.Store.Patch(r.Context(), patch)
	if err == aboutstore.ErrNotFound {
		h.Log.Warn("about update before seeding")
		apiutil.NotFound(w, "about content not found")
		return
	}
	if err != nil {
		h.Log.Error("update about content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"about": about})
}

func buildPatch(fields map[string]any) models.AboutPatch {
	var patch models.AboutPatch

	setString := func(key string, max int, dst **string) {
		if v, present := fields[key]; present {
			if s, ok := inputval.String(v, max); ok {
				*dst = &s
			}
		}
	}
	setString("label", maxLabel, &patch.Label)
	setString("title", maxTitle, &patch.Title)
	setString("titleHighlight", maxTitle, &patch.TitleHighlight)
	setString("graphicText", maxGraphic, &patch.GraphicText)
	setString("graphicSubtext", maxGraphic, &patch.GraphicSubtext)

	if v, present := fields["paragraphs"]; present {
		if s, ok := inputval.RichTextSlice(v, maxParagraph); ok {
			patch.Paragraphs = &s
		}
	}
	if v, present := fields["images"]; present {
		if s, ok := inputval.StringSlice(v, maxURL); ok {
			patch.Images = &s
		}
	}
	if v, present := fields["partnerLogos"]; present {
		if s, ok := inputval.StringSlice(v, maxURL); ok {
			patch.PartnerLogos = &s
		}
	}
	return patch
}
