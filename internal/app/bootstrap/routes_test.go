package bootstrap_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brightforge/studiohub/internal/app/bootstrap"
	"github.com/brightforge/studiohub/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func buildHandler(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appCfg := bootstrap.AppConfig{
		AdminKey:          testutil.TestAdminKey,
		SessionKey:        "test-signing-key-0123456789abcdef",
		SessionName:       "studiohub-admin",
		RateLimitRequests: 30,
		RateLimitWindow:   time.Minute,
		ContentCacheTTL:   30 * time.Second,
	}
	deps := bootstrap.DBDeps{
		MongoClient:   db.Client(),
		MongoDatabase: db,
	}

	handler, err := bootstrap.BuildHandler(&config.CoreConfig{Env: "dev"}, appCfg, deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return handler
}

func TestAdminRoutes_RejectWithoutKey(t *testing.T) {
	handler := buildHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/admin/projects", map[string]any{
		"title": "X", "category": "Web", "description": "Y",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestAdminRoutes_ProjectLifecycle(t *testing.T) {
	handler := buildHandler(t)

	// Create
	req := testutil.WithAdminKey(testutil.NewJSONRequest(t, "POST", "/api/admin/projects", map[string]any{
		"title": "Site relaunch", "category": "Web", "description": "Rebuild",
	}), testutil.TestAdminKey)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201 (%s)", rec.Code, rec.Body.String())
	}

	// Public list sees it
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest("GET", "/api/projects"))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got %d, want 200", rec.Code)
	}
	body := testutil.DecodeResponse(t, rec)
	projects := body["projects"].([]any)
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}

	// Delete, then the id 404s
	req = testutil.WithAdminKey(testutil.NewRequest("DELETE", "/api/admin/projects?id=1"), testutil.TestAdminKey)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: got %d, want 200", rec.Code)
	}

	req = testutil.WithAdminKey(testutil.NewRequest("DELETE", "/api/admin/projects?id=1"), testutil.TestAdminKey)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rec.Code)
	}

	// With the collection empty again, the public list reads as not found.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest("GET", "/api/projects"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("public list after delete: got %d, want 404", rec.Code)
	}
}

func TestAdminRoutes_RateLimitBeforeAuth(t *testing.T) {
	handler := buildHandler(t)

	// 30 requests pass the limiter (and fail auth); the 31st is rejected
	// with 429 even though it carries no key at all.
	var last int
	for i := 0; i < 31; i++ {
		req := testutil.NewRequest("GET", "/api/admin/projects")
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
		if i < 30 && rec.Code != http.StatusUnauthorized {
			t.Fatalf("request %d: got %d, want 401", i+1, rec.Code)
		}
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("31st request: got %d, want 429", last)
	}
}

func TestPublicRoutes_NoAuthRequired(t *testing.T) {
	handler := buildHandler(t)

	// Navbar and contact info serve built-in defaults; projects and members
	// read as not found until something is published. Either way, no auth.
	for _, path := range []string{"/api/navbar", "/api/contact"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, testutil.NewRequest("GET", path))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want 200", path, rec.Code)
		}
	}
	for _, path := range []string{"/api/projects", "/api/members"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, testutil.NewRequest("GET", path))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s on empty collection: got %d, want 404", path, rec.Code)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := buildHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest("GET", "/health"))
	if rec.Code != http.StatusOK {
		t.Errorf("health: got %d, want 200", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := buildHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest("GET", "/metrics"))
	if rec.Code != http.StatusOK {
		t.Errorf("metrics: got %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics body should not be empty")
	}
}
