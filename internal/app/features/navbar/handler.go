// internal/app/features/navbar/handler.go
package navbar

import (
	"net/http"

	navbarstore "github.com/brightforge/studiohub/internal/app/store/navbar"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/app/system/metrics"
	"github.com/brightforge/studiohub/internal/app/system/ttlcache"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxLogoText = 100
	maxLinkName = 100
	maxLinkHref = 500
	maxLinks    = 20
)

const cacheKey = "navbar"

// Handler owns the navbar content endpoints.
type Handler struct {
	Store *navbarstore.Store
	Cache ttlcache.Cache
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store, cache, and logger.
func NewHandler(store *navbarstore.Store, cache ttlcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Cache: cache, Log: logger}
}

// ServeNavbar handles GET /api/navbar (public, cached). Falls back to
// defaults when nothing is stored, so this never 404s.
func (h *Handler) ServeNavbar(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.Cache.Get(cacheKey); ok {
		metrics.CacheHit()
		apiutil.OK(w, map[string]any{"navbar": cached})
		return
	}
	metrics.CacheMiss()

	navbar, err := h.Store.Get(r.Context())
	if err != nil {
		h.Log.Error("fetch navbar content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	h.Cache.Set(cacheKey, navbar)
	apiutil.OK(w, map[string]any{"navbar": navbar})
}

// HandleSave handles POST and PUT /api/admin/navbar. The document is
// replaced wholesale; there is no per-field merge for navigation.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	navbar := buildContent(fields)

	saved, err := h.Store.Upsert(r.Context(), navbar)
	if err != nil {
		h.Log.Error("save navbar content", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"navbar": saved})
}

func buildContent(fields map[string]any) models.NavbarContent {
	var navbar models.NavbarContent

	if v, ok := fields["logo"].(map[string]any); ok {
		if s, ok := inputval.String(v["text"], maxLogoText); ok {
			navbar.Logo.Text = s
		}
	}
	if v, ok := fields["links"].([]any); ok {
		links := make([]models.NavLink, 0, len(v))
		for _, el := range v {
			if len(links) == maxLinks {
				break
			}
			obj, ok := el.(map[string]any)
			if !ok {
				continue
			}
			name, nameOK := inputval.String(obj["name"], maxLinkName)
			href, hrefOK := inputval.String(obj["href"], maxLinkHref)
			if nameOK && hrefOK {
				links = append(links, models.NavLink{Name: name, Href: href})
			}
		}
		navbar.Links = links
	}
	if v, ok := fields["cta"].(map[string]any); ok {
		if s, ok := inputval.String(v["text"], maxLinkName); ok {
			navbar.CTA.Text = s
		}
		if s, ok := inputval.String(v["href"], maxLinkHref); ok {
			navbar.CTA.Href = s
		}
	}
	return navbar
}
