// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/brightforge/studiohub/internal/app/system/adminauth"
	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"go.uber.org/zap"
)

// Handler owns the admin login endpoint. Login exchanges the shared admin
// key for a session cookie so the admin panel does not have to hold the key
// in browser storage.
type Handler struct {
	Secret   string
	Sessions *adminauth.SessionManager
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the configured secret, session
// manager, and logger.
func NewHandler(secret string, sessions *adminauth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Secret: secret, Sessions: sessions, Log: logger}
}

// HandleLogin handles POST /api/login. Rate limiting applies upstream so a
// wrong password burns limiter budget like any other admin request.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if h.Secret == "" {
		h.Log.Error("login attempted with no admin key configured")
		apiutil.Error(w, http.StatusInternalServerError, "server configuration error")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := apiutil.DecodeBody(r, &body); err != nil {
		apiutil.BadRequest(w, "invalid request body")
		return
	}

	if !adminauth.ValidateKey(body.Password, h.Secret) {
		apiutil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Sessions.Issue(w, r, body.Password); err != nil {
		h.Log.Error("issue admin session", zap.Error(err))
		apiutil.ServerError(w)
		return
	}

	apiutil.OK(w, nil)
}
