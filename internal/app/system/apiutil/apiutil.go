// Package apiutil holds the JSON envelope shared by every API endpoint.
//
// Success responses look like {"success":true, ...payload}, errors like
// {"success":false, "error":"message"}. Error messages sent to clients are
// generic; anything useful for debugging goes to the logs instead.
package apiutil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes bounds request bodies. Image uploads embed base64 payloads,
// so this is deliberately generous.
const maxBodyBytes = 10 << 20 // 10 MiB

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 success envelope. Extra fields merge into the envelope.
func OK(w http.ResponseWriter, fields map[string]any) {
	writeSuccess(w, http.StatusOK, fields)
}

// Created writes a 201 success envelope, used after resource creation.
func Created(w http.ResponseWriter, fields map[string]any) {
	writeSuccess(w, http.StatusCreated, fields)
}

func writeSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	WriteJSON(w, status, body)
}

// Error writes an error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]any{"success": false, "error": msg})
}

// BadRequest writes a 400 error envelope.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

// NotFound writes a 404 error envelope.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

// ServerError writes a generic 500 error envelope. The concrete failure is
// expected to be logged by the caller, never sent to the client.
func ServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}

// DecodeBody decodes a JSON request body into dst with a size cap.
func DecodeBody(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// DecodeFields decodes a JSON object body into a generic field map for
// presence-driven partial updates.
func DecodeFields(r *http.Request) (map[string]any, error) {
	var fields map[string]any
	if err := DecodeBody(r, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
