// internal/app/features/upload/handler.go
package upload

import (
	"net/http"
	"strings"

	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedFolders keeps clients from writing outside the site's asset areas.
var allowedFolders = map[string]struct{}{
	"projects": {},
	"members":  {},
	"about":    {},
}

// Handler owns the admin image upload endpoint.
type Handler struct {
	Client *Client
	Log    *zap.Logger
}

// NewHandler constructs a Handler bound to the image host client and logger.
func NewHandler(client *Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// HandleUpload handles POST /api/admin/upload with a JSON body of
// {"image": "<data URI>", "folder": "projects"}. Returns the hosted URL,
// or echoes the data URI back as the stored URL when no image host is
// configured so the admin panel keeps working against embedded images.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image  string `json:"image"`
		Folder string `json:"folder"`
	}
	if err := apiutil.DecodeBody(r, &body); err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	if !strings.HasPrefix(body.Image, "data:image/") {
		apiutil.BadRequest(w, "image must be a base64 data URI")
		return
	}
	folder := body.Folder
	if folder == "" {
		folder = "projects"
	}
	if _, ok := allowedFolders[folder]; !ok {
		apiutil.BadRequest(w, "unknown upload folder")
		return
	}

	if !h.Client.Enabled() {
		h.Log.Warn("no image host configured, passing data URI through", zap.String("folder", folder))
		apiutil.OK(w, map[string]any{"upload": Result{
			URL:     body.Image,
			AssetID: uuid.NewString(),
		}})
		return
	}

	result, err := h.Client.Upload(r.Context(), body.Image, folder)
	if err != nil {
		h.Log.Error("upload image", zap.String("folder", folder), zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, map[string]any{"upload": result})
}
