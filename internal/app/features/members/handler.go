// internal/app/features/members/handler.go
package members

import (
	"net/http"
	"strconv"

	memberstore "github.com/brightforge/studiohub/internal/app/store/members"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/brightforge/studiohub/internal/app/system/inputval"
	"github.com/brightforge/studiohub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxName = 200
	maxRole = 200

	// Member photos may arrive as data URIs.
	maxImage = 8 << 20
)

// Handler owns the team member CRUD endpoints. Members are addressed by
// integer id everywhere; name is display-only.
type Handler struct {
	Store *memberstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Handler bound to the given store and logger.
func NewHandler(store *memberstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Log: logger}
}

// ServeList handles GET /api/admin/members. The admin panel sees an empty
// collection as an ordinary empty list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error("list members", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	apiutil.OK(w, map[string]any{"members": members})
}

// ServePublicList handles GET /api/members. An empty collection reads as
// not found, the same as the other unpublished content kinds.
func (h *Handler) ServePublicList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error("list members", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	if len(members) == 0 {
		apiutil.NotFound(w, "no members found")
		return
	}
	apiutil.OK(w, map[string]any{"members": members})
}

// HandleCreate handles POST /api/admin/members. Name is required; role and
// image are optional and silently dropped when invalid.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := apiutil.DecodeFields(r)
	if err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	name, ok := inputval.String(fields["name"], maxName)
	if !ok || name == "" {
		apiutil.BadRequest(w, "name is required")
		return
	}

	member := models.Member{Name: name}
	if role, ok := inputval.String(fields["role"], maxRole); ok {
		member.Role = role
	}
	if img, ok := inputval.String(fields["image"], maxImage); ok {
		member.Image = img
	}

	created, err := h.Store.Insert(r.Context(), member)
	if err != nil {
		h.Log.Error("create member", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.Created(w, map[string]any{"member": created})
}

// HandleUpdate handles PUT /api/admin/members?id=N (partial merge). Renaming
// is an ordinary field update and never changes which member is addressed.
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

	var patch models.MemberPatch
	if v, present := fields["name"]; present {
		if s, ok := inputval.String(v, maxName); ok && s != "" {
			patch.Name = &s
		}
	}
	if v, present := fields["role"]; present {
		if s, ok := inputval.String(v, maxRole); ok {
			patch.Role = &s
		}
	}
	if v, present := fields["image"]; present {
		if s, ok := inputval.String(v, maxImage); ok {
			patch.Image = &s
		}
	}

	updated, err := h.Store.Update(r.Context(), id, patch)
	if err == memberstore.ErrNotFound {
		h.Log.Warn("update for unknown member", zap.Int("id", id))
		apiutil.NotFound(w, "member not found")
		return
	}
	if err != nil {
		h.Log.Error("update member", zap.Int("id", id), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"member": updated})
}

// HandleDelete handles DELETE /api/admin/members?id=N.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		apiutil.BadRequest(w, "valid id query parameter is required")
		return
	}

	err := h.Store.Delete(r.Context(), id)
	if err == memberstore.ErrNotFound {
		h.Log.Warn("delete for unknown member", zap.Int("id", id))
		apiutil.NotFound(w, "member not found")
		return
	}
	if err != nil {
		h.Log.Error("delete member", zap.Int("id", id), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, nil)
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
