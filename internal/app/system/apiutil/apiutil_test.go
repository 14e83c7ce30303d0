package apiutil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightforge/studiohub/internal/app/system/apiutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.OK(rec, map[string]any{"hero": "content"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "content", body["hero"])
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.Created(rec, map[string]any{"project": map[string]any{"id": 1}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.Error(rec, http.StatusUnauthorized, "unauthorized")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "unauthorized", body["error"])
}

func TestDecodeFields(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"description":"X","year":2024}`))

	fields, err := apiutil.DecodeFields(req)
	require.NoError(t, err)
	assert.Equal(t, "X", fields["description"])
	assert.Equal(t, 2024.0, fields["year"])
}

func TestDecodeFields_BadJSON(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{not json`))

	_, err := apiutil.DecodeFields(req)
	assert.Error(t, err)
}

func TestDecodeFields_EmptyObject(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{}`))

	fields, err := apiutil.DecodeFields(req)
	require.NoError(t, err)
	assert.Empty(t, fields)
}
