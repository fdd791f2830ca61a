package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const requestIDHeader = "X-Request-ID"

// Config locates the backend.
type Config struct {
	// BaseURL is the API root, e.g. https://localhost:7197/api.
	BaseURL string
	Timeout time.Duration
	Breaker BreakerSettings
}

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: backend returned status %d", e.Method, e.URL, e.Code)
	}
	return fmt.Sprintf("%s %s: backend returned status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Client is the shared transport of the gateways.
type Client struct {
	http    *resty.Client
	breaker *breaker
	logger  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	logger = logger.With("component", "backend_client")

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		breaker: newBreaker("backend", cfg.Breaker, logger),
		logger:  logger,
	}
}

// do runs one request through the breaker. operation labels the metrics.
// Non-2xx responses come back as *StatusError.
func (c *Client) do(
	ctx context.Context,
	operation string,
	send func(req *resty.Request) (*resty.Response, error),
) (*resty.Response, error) {
	start := time.Now()
	requestID := uuid.NewString()

	result, err := c.breaker.execute(func() (any, error) {
		req := c.http.R().
			SetContext(ctx).
			SetHeader(requestIDHeader, requestID)

		resp, sendErr := send(req)
		if sendErr != nil {
			return nil, sendErr
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, newStatusError(resp)
		}
		return resp, nil
	})
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.BackendRequestsTotal.WithLabelValues(operation, "rejected").Inc()
			return nil, fmt.Errorf("%w: %w", errs.ErrServiceUnavailable, err)
		}
		metrics.BackendRequestsTotal.WithLabelValues(operation, "error").Inc()
		c.logger.WarnContext(ctx, "backend request failed",
			"operation", operation, "request_id", requestID, "error", err)
		return nil, err
	}

	resp, _ := result.(*resty.Response)
	if resp.IsError() {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "rejected").Inc()
		c.logger.InfoContext(ctx, "backend rejected request",
			"operation", operation, "request_id", requestID, "status", resp.StatusCode())
		return nil, newStatusError(resp)
	}

	metrics.BackendRequestsTotal.WithLabelValues(operation, "success").Inc()
	c.logger.DebugContext(ctx, "backend request completed",
		"operation", operation, "request_id", requestID, "status", resp.StatusCode())
	return resp, nil
}

func newStatusError(resp *resty.Response) *StatusError {
	return &StatusError{
		Method: resp.Request.Method,
		URL:    resp.Request.URL,
		Code:   resp.StatusCode(),
		Body:   strings.TrimSpace(resp.String()),
	}
}

// notFoundAs turns a 404 into an ObjectNotFoundError for param/id and passes
// other errors through.
func notFoundAs(err error, param string, id any) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause(param, id, err)
	}
	return err
}
