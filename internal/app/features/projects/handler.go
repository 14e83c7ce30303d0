// internal/app/features/projects/handler.go
package projects

import (
	"net/http"
	"strconv"
	"time"

	projectstore "github.com/brightforge/studiohub/internal/app/store/projects"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxTitle       = 200
	maxCategory    = 100
	maxDescription = 2000
	maxLink        = 500
	maxTechItem    = 50

	// Image accepts either a URL or an embedded data URI, so the bound is
	// body-sized rather than field-sized.
	maxImage = 8 << 20
)

// Handler owns the project CRUD and reorder endpoints.
type Handler struct {
	Store *projectstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store and logger.
func NewHandler(store *projectstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeList handles GET /api/admin/projects. The admin panel sees an empty
// collection as an ordinary empty list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error("list projects", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	apiutil.OK(w, map[string]any{"projects": projects})
}

// ServePublicList handles GET /api/projects. An empty collection reads as
// not found, the same as the other unpublished content kinds.
func (h *Handler) ServePublicList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error("list projects", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	if len(projects) == 0 {
		apiutil.NotFound(w, "no projects found")
		return
	}
	apiutil.OK(w, map[string]any{"projects": projects})
}

// HandleCreate handles POST /api/admin/projects. Title, category, and
// description are required; failing any of them rejects the whole request.
// Optional fields that fail validation are dropped silently.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	title, titleOK := inputval.String(fields["title"], maxTitle)
	category, catOK := inputval.String(fields["category"], maxCategory)
	description, descOK := inputval.String(fields["description"], maxDescription)
	if !titleOK || title == "" || !catOK || category == "" || !descOK || description == "" {
		apiutil.BadRequest(w, "title, category, and description are required")
		return
	}

	project := models.Project{
		Title:       title,
		Category:    category,
		Description: description,
		Year:        time.Now().Year(),
	}
	if year, ok := inputval.Int(fields["year"]); ok {
		project.Year = year
	}
	if img, ok := inputval.String(fields["image"], maxImage); ok {
		project.Image = img
	}
	if link, ok := inputval.String(fields["link"], maxLink); ok {
		project.Link = link
	}
	if tech, ok := inputval.StringSlice(fields["tech"], maxTechItem); ok {
		project.Tech = tech
	}
	if order, ok := inputval.Int(fields["order"]); ok {
		project.Order = order
	}

	created, err := h.Store.Insert(r.Context(), project)
	if err != nil {
		h.Log.Error("create project", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.Created(w, map[string]any{"project": created})
}

// HandleUpdate handles PUT /api/admin/projects?id=N (partial merge).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiutil.BadRequest(w, "valid id query parameter is required")
		return
	}

	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	patch := buildPatch(fields)

	updated, err := h.Store.Update(r.Context(), id, patch)
	if err == projectstore.ErrNotFound {
		h.Log.Warn("update for unknown project", zap.Int("id", id))
		apiutil.NotFound(w, "project not found")
		return
	}
	if err != nil {
		h.Log.Error("update project", zap.Int("id", id), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"project": updated})
}

// HandleDelete handles DELETE /api/admin/projects?id=N.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiutil.BadRequest(w, "valid id query parameter is required")
		return
	}

	err := h.Store.Delete(r.Context(), id)
	if err == projectstore.ErrNotFound {
		h.Log.Warn("delete for unknown project", zap.Int("id", id))
		apiutil.NotFound(w, "project not found")
		return
	}
	if err != nil {
		h.Log.Error("delete project", zap.Int("id", id), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, nil)
}

// HandleReorder handles POST /api/admin/projects/reorder with a body of
// [{"id":1,"order":2},...]. Unknown ids are skipped; the applied count is
// reported so the admin panel can detect partial application.
func (h *Handler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Orders []models.ProjectOrder `json:"orders"`
	}
	if err := apiutil.DecodeBody(r, &body); err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	applied, err := h.Store.Reorder(r.Context(), body.Orders)
	if err != nil {
		h.Log.Error("reorder projects", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"applied": applied})
}

func buildPatch(fields map[string]any) models.ProjectPatch {
	var patch models.ProjectPatch
	if v, present := fields["title"]; present {
		if s, ok := inputval.String(v, maxTitle); ok {
			patch.Title = &s
		}
	}
	if v, present := fields["category"]; present {
		if s, ok := inputval.String(v, maxCategory); ok {
			patch.Category = &s
		}
	}
	if v, present := fields["description"]; present {
		if s, ok := inputval.String(v, maxDescription); ok {
			patch.Description = &s
		}
	}
	if v, present := fields["year"]; present {
		if n, ok := inputval.Int(v); ok {
			patch.Year = &n
		}
	}
	if v, present := fields["image"]; present {
		if s, ok := inputval.String(v, maxImage); ok {
			patch.Image = &s
		}
	}
	if v, present := fields["link"]; present {
		if s, ok := inputval.String(v, maxLink); ok {
			patch.Link = &s
		}
	}
	if v, present := fields["tech"]; present {
		if s, ok := inputval.StringSlice(v, maxTechItem); ok {
			patch.Tech = &s
		}
	}
	if v, present := fields["order"]; present {
		if n, ok := inputval.Int(v); ok {
			patch.Order = &n
		}
	}
	return patch
}

func idParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
