// Package httpapi is the REST transport for the print-shop backend. It maps
// each resource operation onto one HTTP call and reports non-2xx responses as
// *APIError without interpreting them.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/example/printadmin/internal/ctxutil"
)

// RequestIDHeader carries a per-call UUID so backend logs can be matched
// against the local audit log.
const RequestIDHeader = "X-Request-ID"

// Client wraps a resty client bound to the API base URL.
type Client struct {
	rc     *resty.Client
	logger *zap.Logger
}

// Options configures NewClient.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// NewClient creates a transport client. Retries stay disabled: a failed call
// surfaces to the caller exactly once.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	c := &Client{rc: rc, logger: logger.Named("httpapi")}

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		id := ctxutil.RequestIDFromContext(r.Context())
		if id == "" {
			_, id = ctxutil.NewRequestID(r.Context())
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug("api call",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("elapsed", resp.Time()),
			zap.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
		)
		return nil
	})

	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// do performs one request. result may be nil for bodiless responses.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug("api call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if !resp.IsSuccess() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	return nil
}

// Ping issues GET path and reports whether the backend answered with 2xx.
func (c *Client) Ping(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodGet, path, nil, nil)
}
