// Package api wraps all outbound calls to the marketplace REST API.
//
// Every request carries the stored bearer token when one is present. A 401
// from any endpoint terminates the session: the token store is cleared, the
// session-expired hook fires, and the call is rejected with
// ErrSessionExpired so the caller's error path runs as well.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dowlet20/ecom-admin/internal/admin/session"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

// Client is the HTTP client for the marketplace API. All calls share one
// fixed timeout and nothing is retried automatically.
type Client struct {
	baseURL   string
	imageURL  string
	http      *http.Client
	session   *session.Store
	onExpired func()
	log       logging.Logger
}

// New constructs a Client. baseURL has no trailing slash requirement;
// imageBaseURL is the host thumbnails are served from.
func New(baseURL, imageBaseURL string, timeout time.Duration, store *session.Store, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		imageURL: strings.TrimSuffix(imageBaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		session:  store,
		log:      log,
	}
}

// OnSessionExpired registers fn to run whenever any call gets a 401.
// The hook runs after the token store is cleared.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpired = fn
}

// ImageURL joins a server-relative thumbnail path with the image base URL.
func (c *Client) ImageURL(rel string) string {
	if rel == "" {
		return ""
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return c.imageURL + rel
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// PostForm issues a multipart POST and decodes the response into out when
// out is non-nil.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// PutForm issues a multipart PUT and decodes the response into out when
// out is non-nil.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, bytes.NewReader(data), "application/json", out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(); err != nil {
			c.log.Warn(ctx, "clearing session failed", "error", err)
		}
		if c.onExpired != nil {
			c.onExpired()
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// serverMessage pulls the "message" field out of an error body, if any.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
