// internal/app/features/upload/client.go
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the image host's answer for a stored asset.
type Result struct {
	URL     string `json:"url"`
	AssetID string `json:"assetId"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Client talks to the external image hosting service. Uploads are unsigned:
// the host validates the preset name instead of per-request credentials.
type Client struct {
	uploadURL string
	preset    string
	http      *http.Client
}

// NewClient builds an image host client. uploadURL empty disables uploads.
func NewClient(uploadURL, preset string) *Client {
	return &Client{
		uploadURL: uploadURL,
		preset:    preset,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an upload host is configured.
func (c *Client) Enabled() bool {
	return c.uploadURL != ""
}

// hostResponse is the wire shape the image host returns.
type hostResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Upload sends a base64 data URI to the image host and returns the hosted
// asset. folder groups assets on the host side (projects, members, about).
func (c *Client) Upload(ctx context.Context, dataURI, folder string) (Result, error) {
	var body strings.Builder
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"file":          dataURI,
		"upload_preset": c.preset,
		"folder":        folder,
		"public_id":     uuid.NewString(),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return Result{}, fmt.Errorf("build upload form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return Result{}, fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, strings.NewReader(body.String()))
	if err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var hr hostResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return Result{}, fmt.Errorf("decode image host response: %w", err)
	}
	return Result{
		URL:     hr.SecureURL,
		AssetID: hr.PublicID,
		Width:   hr.Width,
		Height:  hr.Height,
	}, nil
}
