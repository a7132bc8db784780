// Package identity adapts the hosted identity provider (a GoTrue compatible
// REST API) to the auth service's repository contracts.
package identity

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
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/be1500616/zergoqrf/internal/auth/models"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
	"github.com/be1500616/zergoqrf/internal/platform/tracer"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10
)

// ErrProviderUnavailable wraps transport failures and 5xx/429 responses.
var ErrProviderUnavailable = errors.New("identity provider unavailable")

// Directory looks users up by contact details. The provider's admin API only
// addresses users by id.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
}

// Client talks to the provider with the anon key for user flows and the
// service role key for admin calls.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
	directory  Directory
	tracer     *tracer.Tracer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithDirectory(d Directory) Option {
	return func(cl *Client) {
		cl.directory = d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(cl *Client) {
		cl.metrics = m
	}
}

func WithTracer(t *tracer.Tracer) Option {
	return func(cl *Client) {
		cl.tracer = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New builds a client for the provider rooted at baseURL (the project URL,
// without the /auth/v1 suffix).
func New(baseURL, anonKey, serviceKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/auth/v1",
		anonKey:    anonKey,
		serviceKey: serviceKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.tracer == nil {
		c.tracer = tracer.New("identity")
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// call describes one provider request.
type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	admin     bool
	bearer    string
}

// rejection is a 4xx answer from the provider. Its text feeds failure
// classification and is never shown to clients.
type rejection struct {
	status  int
	message string
}

func (r *rejection) Error() string {
	return fmt.Sprintf("identity provider rejected request (%d): %s", r.status, r.message)
}

// do sends the request and decodes a 2xx body into out. 4xx answers come back
// as *rejection; transport errors, 429 and 5xx as ErrProviderUnavailable.
func (c *Client) do(ctx context.Context, req call, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "identity."+req.operation,
		attribute.String("http.method", req.method),
		attribute.String("identity.path", req.path),
	)
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveIdentityProviderLatency(req.operation, time.Since(start).Seconds())
		}
		var rej *rejection
		if errors.As(err, &rej) {
			span.SetAttributes(attribute.Int("http.status_code", rej.status))
			span.End(nil)
			return
		}
		span.End(err)
	}()

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", req.operation, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	key := c.anonKey
	if req.admin {
		key = c.serviceKey
	}
	httpReq.Header.Set("apikey", key)
	switch {
	case req.bearer != "":
		httpReq.Header.Set("Authorization", "Bearer "+req.bearer)
	case req.admin:
		httpReq.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", req.operation, ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", req.operation, err)
		}
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%s: %w: status %d", req.operation, ErrProviderUnavailable, resp.StatusCode)
	default:
		var pe providerError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(raw, &pe)
		return &rejection{status: resp.StatusCode, message: pe.text()}
	}
}

// rejected extracts the provider's message from a 4xx answer.
func rejected(err error) (string, bool) {
	var rej *rejection
	if errors.As(err, &rej) {
		return rej.message, true
	}
	return "", false
}

func notFound(err error) bool {
	var rej *rejection
	return errors.As(err, &rej) && rej.status == http.StatusNotFound
}
