package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
)

// Client implements port.PlatformAPI over the platform's JSON REST API.
// It is an outbound adapter; every call carries the caller's bearer token.
type Client struct {
	baseURL url.URL
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient builds a client from configuration. A non-positive rate
// limit disables outbound throttling.
func NewClient(cfg configs.Platform, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// errorEnvelope is the platform's error body.
type errorEnvelope struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details"`
}

type request struct {
	op     string
	method string
	path   []string
	query  url.Values
	token  string
	body   any
}

// do sends req and decodes a successful response body into out, which may
// be nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}

	u := c.baseURL.JoinPath(req.path...)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: %w", req.op, ctx.Err())
		}
		return &domain.TransientError{Op: req.op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("platform request",
		slog.String("op", req.op),
		slog.String("method", req.method),
		slog.String("path", u.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(started)),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.TransientError{Op: req.op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}
	return decodeError(req.op, resp)
}

// decodeError maps a non-2xx response onto the domain error taxonomy.
func decodeError(op string, resp *http.Response) error {
	var env errorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &env)
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", op, domain.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &domain.TransientError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	case resp.StatusCode >= 400:
		return &domain.ValidationError{Message: msg, Fields: env.Details}
	}
	return &domain.TransientError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(msg)}
}
