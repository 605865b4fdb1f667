// Package api is the HTTP client wrapper for the event backend. It builds
// request URLs from a configurable base address, attaches the bearer token
// held in the session store, unwraps the backend's response envelopes, and
// normalizes failures into *Error values.
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

	"github.com/eventlane/eventlane/internal/logging"
)

// loginPath is exempt from the 401 session-clearing side effect: a failed
// login must not wipe whatever session the user still has.
const loginPath = "/auth/login"

// SessionStore is the slice of the session store the HTTP client needs.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	ClearAuth(ctx context.Context) error
}

type Client struct {
	baseURL string
	hc      *http.Client
	session SessionStore
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, session SessionStore, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// BaseURL returns the configured base address (needed by display code to
// resolve relative image paths).
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.session != nil {
		token, err := c.session.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "reading session token", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newError(resp.StatusCode, raw)
		c.log.Debug(ctx, "request failed", "method", method, "path", path,
			"status", resp.StatusCode, "message", apiErr.Message)

		// A 401 anywhere but the login endpoint means the stored token is
		// no longer valid; drop the session so the next action goes
		// through login again.
		if resp.StatusCode == http.StatusUnauthorized && path != loginPath && c.session != nil {
			if clearErr := c.session.ClearAuth(ctx); clearErr != nil {
				c.log.Error(ctx, "clearing session after 401", "error", clearErr)
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	// 201/204 responses and non-JSON bodies decode to the zero value.
	ct := resp.Header.Get("Content-Type")
	if len(raw) == 0 || !strings.Contains(ct, "application/json") {
		return nil
	}

	if err := json.Unmarshal(Unwrap(raw), out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
