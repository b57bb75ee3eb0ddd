// ABOUTME: HTTP gateway for the sales-calling backend
// ABOUTME: Attaches bearer tokens and performs the one-shot refresh-and-retry on 401
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"calldeck/config"
	"calldeck/session"
)

// Client talks to the backend REST API. All entity operations hang off it;
// nothing else in the program issues HTTP requests.
type Client struct {
	base  string
	http  *http.Client
	store session.Store
}

// New creates a client against the configured base URL with the given
// session store.
func New(cfg *config.Config, store session.Store) *Client {
	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		http:  &http.Client{Timeout: cfg.Timeout},
		store: store,
	}
}

// NewWithHTTPClient injects a custom http.Client, used by tests.
func NewWithHTTPClient(base string, hc *http.Client, store session.Store) *Client {
	return &Client{base: strings.TrimRight(base, "/"), http: hc, store: store}
}

// Session returns the stored session, never nil.
func (c *Client) Session() (*session.Session, error) {
	sess, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// do issues an authenticated JSON request. A 401 triggers exactly one
// refresh-token exchange and one retry of the original request with the new
// token; a failed refresh surfaces ErrUnauthenticated.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	sess, err := c.Session()
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return session.ErrNotAuthenticated
	}

	err = c.send(ctx, method, path, sess, in, out)
	apiErr, ok := err.(*APIError)
	if !ok || !apiErr.Unauthorized() {
		return err
	}

	if err := c.refresh(ctx, sess); err != nil {
		return ErrUnauthenticated
	}
	return c.send(ctx, method, path, sess, in, out)
}

// doUnauthenticated issues a JSON request without a bearer token. Used by
// login and signup.
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, in, out any) error {
	return c.send(ctx, method, path, nil, in, out)
}

func (c *Client) send(ctx context.Context, method, path string, sess *session.Session, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		if sess.DeviceID != "" {
			req.Header.Set("X-Device-ID", sess.DeviceID)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, payload)
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// refresh exchanges the refresh token for a new access token and persists
// it. No retry: one shot per failed request.
func (c *Client) refresh(ctx context.Context, sess *session.Session) error {
	if sess.RefreshToken == "" {
		return fmt.Errorf("no refresh token stored")
	}

	var result struct {
		Access string `json:"access"`
	}
	req := map[string]string{"refresh": sess.RefreshToken}
	if err := c.send(ctx, http.MethodPost, "/auth/token/refresh/", nil, req, &result); err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}
	if result.Access == "" {
		return fmt.Errorf("token refresh returned no access token")
	}

	sess.AccessToken = result.Access
	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("failed to persist refreshed token: %w", err)
	}
	return nil
}

// upload posts a multipart file with optional extra form fields. Carries
// the same 401 refresh-and-retry behavior as do.
func (c *Client) upload(ctx context.Context, path, fileField, filename string, content []byte, fields map[string]string, out any) error {
	sess, err := c.Session()
	if err != nil {
		return err
	}
	if !sess.Authenticated() {
		return session.ErrNotAuthenticated
	}

	err = c.sendMultipart(ctx, path, fileField, filename, content, fields, sess, out)
	apiErr, ok := err.(*APIError)
	if !ok || !apiErr.Unauthorized() {
		return err
	}

	if err := c.refresh(ctx, sess); err != nil {
		return ErrUnauthenticated
	}
	return c.sendMultipart(ctx, path, fileField, filename, content, fields, sess, out)
}

func (c *Client) sendMultipart(ctx context.Context, path, fileField, filename string, content []byte, fields map[string]string, sess *session.Session, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fileField, filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("failed to build upload: %w", err)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to build upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	if sess.DeviceID != "" {
		req.Header.Set("X-Device-ID", sess.DeviceID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, payload)
	}
	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
