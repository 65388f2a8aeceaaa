// Package backend implements the HTTP client for the remote marketplace
// API. Every entity the gateway shows is owned by that API; this package
// only forwards JSON requests, replays the session credential, and maps
// error envelopes onto domain sentinels.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/api/metrics"
	"github.com/trailconnect/web-gateway/internal/core/domain"
)

const (
	headerContentType = "Content-Type"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
	gatewayUserAgent  = "trailconnect-gateway/1.0"

	defaultTimeout = 10 * time.Second
)

// Client is the shared HTTP transport for all API wrappers.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client for the given base URL. A default timeout is
// applied when none is provided.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do performs one request against the API. endpoint is the logical name
// used for metrics ("guides.list"), credential the session cookie pair to
// replay (empty for anonymous calls). A non-nil result is filled from the
// response body on 2xx.
func (c *Client) do(ctx context.Context, endpoint, method, path, credential string, body, result any) error {
	resp, respBody, err := c.roundTrip(ctx, endpoint, method, path, credential, body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}
	return nil
}

// roundTrip executes the request and returns the raw response plus its
// fully read body. Transport failures wrap domain.ErrBackendUnavailable.
func (c *Client) roundTrip(ctx context.Context, endpoint, method, path, credential string, body any) (*http.Response, []byte, error) {
	reqURL := c.baseURL + path
	if !strings.Contains(path, "?") {
		joined, err := url.JoinPath(c.baseURL, path)
		if err != nil {
			return nil, nil, fmt.Errorf("build url: %w", err)
		}
		reqURL = joined
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}

	req.Header.Set(headerUserAgent, gatewayUserAgent)
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if credential != "" {
		req.Header.Set("Cookie", credential)
	}

	timer := prometheus.NewTimer(metrics.BackendRequestDuration.WithLabelValues(endpoint))
	resp, err := c.http.Do(req)
	timer.ObserveDuration()
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("marketplace API unreachable")
		return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: read body: %v", domain.ErrBackendUnavailable, endpoint, err)
	}
	return resp, respBody, nil
}

func (c *Client) get(ctx context.Context, endpoint, path, credential string, result any) error {
	return c.do(ctx, endpoint, http.MethodGet, path, credential, nil, result)
}

func (c *Client) post(ctx context.Context, endpoint, path, credential string, body, result any) error {
	return c.do(ctx, endpoint, http.MethodPost, path, credential, body, result)
}

func (c *Client) put(ctx context.Context, endpoint, path, credential string, body, result any) error {
	return c.do(ctx, endpoint, http.MethodPut, path, credential, body, result)
}

func (c *Client) patch(ctx context.Context, endpoint, path, credential string, body, result any) error {
	return c.do(ctx, endpoint, http.MethodPatch, path, credential, body, result)
}

func (c *Client) delete(ctx context.Context, endpoint, path, credential string) error {
	return c.do(ctx, endpoint, http.MethodDelete, path, credential, nil, nil)
}

// Ping reports whether the API answers HTTP at all. Any status counts as
// reachable; only transport failures are unhealthy.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	req.Header.Set(headerUserAgent, gatewayUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	resp.Body.Close()
	return nil
}

// postForCredential performs a POST and additionally captures the session
// cookie set by the API, serialised as a "name=value" pair for replay.
func (c *Client) postForCredential(ctx context.Context, endpoint, path string, body, result any) (string, error) {
	resp, respBody, err := c.roundTrip(ctx, endpoint, http.MethodPost, path, "", body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		return "", parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return "", fmt.Errorf("decode %s response: %w", endpoint, err)
		}
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return "", fmt.Errorf("%s: no session cookie in response", endpoint)
	}
	return cookies[0].Name + "=" + cookies[0].Value, nil
}
