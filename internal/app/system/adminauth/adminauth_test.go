package adminauth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightforge/studiohub/internal/app/system/adminauth"
	"go.uber.org/zap"
)

func TestValidateKey_Matches(t *testing.T) {
	if !adminauth.ValidateKey("super-secret-key", "super-secret-key") {
		t.Error("expected matching keys to validate")
	}
}

func TestValidateKey_Mismatch(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		secret   string
	}{
		{"wrong key same length", "super-secret-kex", "super-secret-key"},
		{"differs at first char", "xuper-secret-key", "super-secret-key"},
		{"differs at last char", "super-secret-kez", "super-secret-key"},
		{"shorter", "super", "super-secret-key"},
		{"longer", "super-secret-key-plus", "super-secret-key"},
		{"empty provided", "", "super-secret-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if adminauth.ValidateKey(tt.provided, tt.secret) {
				t.Errorf("ValidateKey(%q, %q) = true, want false", tt.provided, tt.secret)
			}
		})
	}
}

func TestValidateKey_FailsClosedWithoutSecret(t *testing.T) {
	if adminauth.ValidateKey("", "") {
		t.Error("empty secret must never authorize, even for an empty key")
	}
	if adminauth.ValidateKey("anything", "") {
		t.Error("empty secret must never authorize")
	}
}

func newSessionManager(t *testing.T) *adminauth.SessionManager {
	t.Helper()
	sm, err := adminauth.NewSessionManager(
		"test-signing-key-must-be-32-chars!!",
		"studiohub-admin",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	_, err := adminauth.NewSessionManager("", "studiohub-admin", "", false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestKeyFromRequest_HeaderWins(t *testing.T) {
	sm := newSessionManager(t)

	req := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	req.Header.Set(adminauth.KeyHeader, "header-key")

	if got := sm.KeyFromRequest(req); got != "header-key" {
		t.Errorf("KeyFromRequest = %q, want %q", got, "header-key")
	}
}

func TestKeyFromRequest_NoCredentials(t *testing.T) {
	sm := newSessionManager(t)

	req := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	if got := sm.KeyFromRequest(req); got != "" {
		t.Errorf("KeyFromRequest = %q, want empty", got)
	}
}

func TestIssue_SetsCookieReadableByKeyFromRequest(t *testing.T) {
	sm := newSessionManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/login", nil)
	if err := sm.Issue(rec, req, "the-admin-key"); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be httpOnly")
	}

	next := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	if got := sm.KeyFromRequest(next); got != "the-admin-key" {
		t.Errorf("KeyFromRequest after Issue = %q, want %q", got, "the-admin-key")
	}
}

func TestGuard_Unauthorized(t *testing.T) {
	sm := newSessionManager(t)
	guard := adminauth.NewGuard("configured-secret-value", sm, zap.NewNop())

	handler := guard.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without valid key")
	}))

	req := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	req.Header.Set(adminauth.KeyHeader, "wrong-key-value-of-len")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGuard_MissingSecretFailsClosed(t *testing.T) {
	sm := newSessionManager(t)
	guard := adminauth.NewGuard("", sm, zap.NewNop())

	handler := guard.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when no secret is configured")
	}))

	req := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	req.Header.Set(adminauth.KeyHeader, "")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGuard_Authorized(t *testing.T) {
	sm := newSessionManager(t)
	guard := adminauth.NewGuard("configured-secret-value", sm, zap.NewNop())

	ran := false
	handler := guard.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("PUT", "/api/admin/hero", nil)
	req.Header.Set(adminauth.KeyHeader, "configured-secret-value")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Error("handler did not run with valid key")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
