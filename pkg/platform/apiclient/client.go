// Package apiclient is the shared request helper behind every compliance API
// client: it builds the request, enforces the per-call timeout, and folds both
// transport and application failures into a single Response envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks Doer,Recorder

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Recorder receives per-call measurements.
type Recorder interface {
	ObserveRequest(client, operation string, d time.Duration)
	IncrementError(client, operation, code string)
}

// Call describes one round trip.
type Call struct {
	Operation string // metric and span label, e.g. "get_company"
	Method    string
	Path      string // appended to the base URL, already escaped
	Body      any    // JSON-encoded for POST only
}

// Client holds immutable configuration and is safe for concurrent use.
type Client struct {
	name     string
	cfg      Config
	statuses StatusTable
	doer     Doer
	logger   *slog.Logger
	metrics  Recorder
	tracer   trace.Tracer
}

type Option func(c *Client)

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m Recorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New validates cfg and constructs a Client. name labels logs, metrics and spans.
func New(name string, cfg Config, statuses StatusTable, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		name:     name,
		cfg:      cfg,
		statuses: statuses,
		doer:     &http.Client{},
		tracer:   otel.Tracer("complyhub/apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name returns the client label.
func (c *Client) Name() string {
	return c.name
}

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.cfg.Timeout
}

// Get issues a GET and decodes a 2xx body into T.
func Get[T any](ctx context.Context, c *Client, operation, path string) Response[T] {
	return Do[T](ctx, c, Call{Operation: operation, Method: http.MethodGet, Path: path})
}

// Post issues a POST with a JSON body and decodes a 2xx body into T.
func Post[T any](ctx context.Context, c *Client, operation, path string, body any) Response[T] {
	return Do[T](ctx, c, Call{Operation: operation, Method: http.MethodPost, Path: path, Body: body})
}

// Do performs exactly one round trip. It never returns a Go error and never
// retries: every failure is reported through the envelope.
func Do[T any](ctx context.Context, c *Client, call Call) Response[T] {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, c.name+"."+call.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", call.Method),
			attribute.String("complyhub.operation", call.Operation),
		),
	)
	defer span.End()

	resp := roundTrip[T](ctx, c, call)
	c.observe(ctx, span, call, resp.Status, resp.Error, time.Since(start))
	return resp
}

func roundTrip[T any](ctx context.Context, c *Client, call Call) Response[T] {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := c.newRequest(ctx, call)
	if err != nil {
		return failure[T](StatusUnknown, unknownError(err))
	}

	res, err := c.doer.Do(req)
	if err != nil {
		status, apiErr := c.transportError(ctx, err)
		return failure[T](status, apiErr)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		status, apiErr := c.transportError(ctx, err)
		return failure[T](status, apiErr)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return failure[T](res.StatusCode, c.parseAPIError(body, res.StatusCode))
	}

	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return failure[T](StatusUnknown, unknownError(fmt.Errorf("decode response: %w", err)))
	}
	return Response[T]{Status: res.StatusCode, Data: &data}
}

func (c *Client) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	var body io.Reader
	if call.Body != nil && call.Method == http.MethodPost {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, c.cfg.BaseURL+call.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	return req, nil
}

// transportError classifies a failure that happened before a complete response
// was read. ctx is the per-call context carrying the timeout.
func (c *Client) transportError(ctx context.Context, err error) (int, *APIError) {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return StatusTimeout, &APIError{
			Code:    CodeRequestTimeout,
			Message: fmt.Sprintf("Request timed out after %dms", c.cfg.Timeout.Milliseconds()),
		}
	case errors.Is(err, context.Canceled), errors.Is(ctx.Err(), context.Canceled):
		return StatusTimeout, &APIError{
			Code:    CodeRequestTimeout,
			Message: "Request was cancelled",
		}
	default:
		return StatusNetworkFailure, &APIError{
			Code:    CodeNetworkError,
			Message: "Network error occurred. Please check your connection.",
		}
	}
}

// parseAPIError prefers the API's own error object and falls back to the
// status table for non-standard bodies.
func (c *Client) parseAPIError(body []byte, status int) *APIError {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return &APIError{Code: c.statuses.Code(status), Message: c.statuses.Message(status)}
	}

	// Any non-empty error field counts as API reported; only an object can
	// carry a code, message or details.
	if present(payload["error"]) {
		apiErr, _ := payload["error"].(map[string]any)
		return &APIError{
			Code:    stringOr(apiErr["code"], CodeAPIError),
			Message: stringOr(apiErr["message"], "An API error occurred"),
			Details: apiErr["details"],
		}
	}

	return &APIError{
		Code:    c.statuses.Code(status),
		Message: stringOr(payload["message"], c.statuses.Message(status)),
		Details: payload,
	}
}

func (c *Client) observe(ctx context.Context, span trace.Span, call Call, status int, apiErr *APIError, d time.Duration) {
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if c.metrics != nil {
		c.metrics.ObserveRequest(c.name, call.Operation, d)
	}

	if apiErr == nil {
		if c.logger != nil {
			c.logger.DebugContext(ctx, "compliance api call succeeded",
				"client", c.name,
				"operation", call.Operation,
				"status", status,
				"duration_ms", d.Milliseconds(),
			)
		}
		return
	}

	span.SetAttributes(attribute.String("complyhub.error_code", apiErr.Code))
	span.SetStatus(otelcodes.Error, apiErr.Code)
	if c.metrics != nil {
		c.metrics.IncrementError(c.name, call.Operation, apiErr.Code)
	}
	if c.logger != nil {
		c.logger.WarnContext(ctx, "compliance api call failed",
			"client", c.name,
			"operation", call.Operation,
			"status", status,
			"code", apiErr.Code,
			"duration_ms", d.Milliseconds(),
		)
	}
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
