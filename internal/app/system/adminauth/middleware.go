// internal/app/system/adminauth/middleware.go
package adminauth

import (
	"net/http"

	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"go.uber.org/zap"
)

// Guard is the admin authorization middleware. It runs after rate limiting
// so unauthenticated floods cannot probe the key at unlimited rate.
type Guard struct {
	secret   string
	sessions *SessionManager
	log      *zap.Logger
}

// NewGuard builds a Guard. An empty secret is allowed at construction time
// but makes every authorization fail with a server-misconfiguration error.
func NewGuard(secret string, sessions *SessionManager, logger *zap.Logger) *Guard {
	return &Guard{secret: secret, sessions: sessions, log: logger}
}

// Require rejects requests that do not carry the configured admin key in the
// X-Admin-Key header or the login session cookie. Missing and wrong keys get
// the same generic response.
func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.secret == "" {
			g.log.Error("admin key is not configured; refusing admin request",
				zap.String("path", r.URL.Path))
			apiutil.Error(w, http.StatusInternalServerError, "server configuration error")
			return
		}

		if !ValidateKey(g.sessions.KeyFromRequest(r), g.secret) {
			apiutil.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
