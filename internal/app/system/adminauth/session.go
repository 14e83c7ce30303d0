// internal/app/system/adminauth/session.go
package adminauth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// KeyHeader carries the admin key on stateless admin API requests.
	KeyHeader = "X-Admin-Key"

	adminKeyValue = "admin_key"

	// SessionTTL is how long a login session cookie stays valid.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionManager issues and clears the admin session cookie set by the login
// endpoint. The cookie holds the admin key itself (signed and encrypted by
// the cookie store), so every request is re-validated against the configured
// secret and rotating the secret invalidates all sessions at once.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. The signing key
// must be non-empty; 32+ random characters are expected in production.
func NewSessionManager(signingKey, cookieName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("session signing key is empty; provide 32+ random chars")
	}
	if len(signingKey) < 32 {
		logger.Warn("session signing key is short; 32+ chars recommended",
			zap.Int("length", len(signingKey)))
	}

	store := sessions.NewCookieStore([]byte(signingKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}

	return &SessionManager{store: store, name: cookieName, log: logger}, nil
}

// Issue stores the admin key in a fresh session cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, r *http.Request, adminKey string) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[adminKeyValue] = adminKey
	sess.Options.MaxAge = int(SessionTTL.Seconds())
	return sess.Save(r, w)
}

// Clear expires the session cookie unconditionally.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Options.MaxAge = -1
	delete(sess.Values, adminKeyValue)
	return sess.Save(r, w)
}

// KeyFromRequest extracts the admin key a request carries: the header for
// stateless API calls, with the session cookie as fallback for the admin
// panel after login. Returns "" when neither is present.
func (m *SessionManager) KeyFromRequest(r *http.Request) string {
	if key := r.Header.Get(KeyHeader); key != "" {
		return key
	}
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return ""
	}
	if key, ok := sess.Values[adminKeyValue].(string); ok {
		return key
	}
	return ""
}
