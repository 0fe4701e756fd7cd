// Package remote is the HTTP adapter for the Crefinso REST API. One Client
// carries the base URL and timeout; per-resource services layered on top of it
// implement the domain repository interfaces.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Cap on how much of an error response body we keep for diagnostics.
const maxErrorBody = 8 << 10

// TokenSource supplies the bearer token for the session carried in ctx.
// An empty token with a nil error means "not logged in".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}
}

// authorize resolves the session token and sets it on this request only.
// Headers are never stored on the shared client, so concurrent calls cannot
// see each other's tokens.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return errUnauthenticated(err)
	}
	if token == "" {
		return errUnauthenticated(nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// getJSON issues an authenticated GET and decodes the body into out.
// The token check happens before any network I/O.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errTransport(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDeserialization, Err: err}
	}
	return nil
}

// send issues an authenticated request with an optional JSON body and discards
// any success payload.
func (c *Client) send(ctx context.Context, method, path string, body any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body for %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errTransport(err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// postJSON issues an UNauthenticated POST and decodes the response; only the
// login endpoint uses it.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body for POST %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errTransport(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDeserialization, Err: err}
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &Error{Kind: KindRemoteRejected, Status: resp.StatusCode, Body: string(b)}
}
