package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ddevcap/watchsync/queue"
)

// NewHTTPClient builds the shared HTTP client for API traffic: bounded
// timeouts, keep-alive, per-host connection reuse sized for the scatter
// phases of import and export.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConnsPerHost:   10,
	}
	return &http.Client{
		Transport: transport,
		// Library content pages can be large; the total timeout covers the
		// full body read, not just the first byte.
		Timeout: 5 * time.Minute,
	}
}

// NewRequest builds an authenticated request against the context's server.
// The kind's auth header and the context's default headers are applied;
// query is encoded onto the URL.
func (c *Context) NewRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	u := c.URL(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", c.Name, err)
	}

	for k, vv := range c.Headers {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set(c.AuthHeader(), c.Token)
	}
	return req, nil
}

// AuthHeader returns the token header name for the context's kind.
func (c *Context) AuthHeader() string {
	if c.Kind == KindPlex {
		return "X-Plex-Token"
	}
	// Jellyfin and Emby share the Emby auth header.
	return "X-Emby-Token"
}

// NewEnvelope builds a queue envelope carrying the same auth and default
// headers NewRequest would apply. Clients use it for all scatter-phase
// requests.
func (c *Context) NewEnvelope(method, path string, query url.Values, body []byte, logCtx ...any) queue.Envelope {
	u := c.URL(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	header := make(http.Header, len(c.Headers)+3)
	for k, vv := range c.Headers {
		for _, v := range vv {
			header.Add(k, v)
		}
	}
	header.Set("Accept", "application/json")
	if len(body) > 0 {
		header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		header.Set(c.AuthHeader(), c.Token)
	}

	return queue.Envelope{
		Method:     method,
		URL:        u,
		Header:     header,
		Body:       body,
		LogContext: c.LogWith(logCtx...),
	}
}

// Fetch performs an immediate (non-queued) request and buffers the body.
// Network-level failures return a non-nil error; HTTP-level failures are
// signalled via the status code only, since callers decide what a 404 means.
func Fetch(ctx context.Context, client *http.Client, c *Context, method, path string, query url.Values, body []byte) ([]byte, int, error) {
	req, err := c.NewRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request to %s failed: %w", c.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response from %s: %w", c.Name, err)
	}
	return raw, resp.StatusCode, nil
}
