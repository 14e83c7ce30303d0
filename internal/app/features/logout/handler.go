// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/brightforge/studiohub/internal/app/system/adminauth"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"go.uber.org/zap"
)

// Handler owns the logout endpoint.
type Handler struct {
	Sessions *adminauth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the session manager and logger.
func NewHandler(sessions *adminauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Sessions: sessions, Log: logger}
}

// HandleLogout handles POST /api/logout. The cookie is cleared whether or
// not a valid session existed; logout is not an authenticated operation.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.Log.Error("clear admin session", zap.Error(err))
		apiutil.ServerError(w)
		return
	}
	apiutil.OK(w, nil)
}
