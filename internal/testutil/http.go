package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestAdminKey is the shared secret used by handler tests.
const TestAdminKey = "test-admin-key-for-handler-tests"

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates a request with the given value marshaled as the
// JSON body and the Content-Type header set.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAdminKey sets the admin key header on the request.
func WithAdminKey(r *http.Request, key string) *http.Request {
	r.Header.Set("X-Admin-Key", key)
	return r
}

// DecodeResponse unmarshals the recorder body into a generic map.
func DecodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertSuccess checks that the JSON envelope reports success.
func (r *ResponseRecorder) AssertSuccess(t *testing.T) {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(r.Body.Bytes(), &body); err != nil {
		t.Errorf("failed to decode response body %q: %v", r.Body.String(), err)
		return
	}
	if body["success"] != true {
		t.Errorf("expected success envelope, got %q", r.Body.String())
	}
}

// AssertError checks for a failure envelope with the given status.
func (r *ResponseRecorder) AssertError(t *testing.T, expectedStatus int) {
	t.Helper()

	r.AssertStatus(t, expectedStatus)
	var body map[string]any
	if err := json.Unmarshal(r.Body.Bytes(), &body); err != nil {
		t.Errorf("failed to decode response body %q: %v", r.Body.String(), err)
		return
	}
	if body["success"] != false {
		t.Errorf("expected error envelope, got %q", r.Body.String())
	}
}
