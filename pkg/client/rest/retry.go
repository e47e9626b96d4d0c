package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	svcErrors "github.com/bf2fc6cc711aee1a0c2a/idm-client-go/pkg/errors"
)

const (
	defaultMaxRetries   = 3
	defaultBaseInterval = 500 * time.Millisecond
	defaultMaxInterval  = 10 * time.Second
)

// RetryConfig controls the retry decorator. The zero value enables retries
// with the package defaults; set Enabled to false to make the decorator a
// passthrough. The configuration is accepted as-is, without validation.
type RetryConfig struct {
	Enabled      *bool
	MaxRetries   int
	BaseInterval time.Duration
	MaxInterval  time.Duration
}

func (c RetryConfig) enabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c RetryConfig) maxRetries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return defaultMaxRetries
}

func (c RetryConfig) baseInterval() time.Duration {
	if c.BaseInterval > 0 {
		return c.BaseInterval
	}
	return defaultBaseInterval
}

func (c RetryConfig) maxInterval() time.Duration {
	if c.MaxInterval > 0 {
		return c.MaxInterval
	}
	return defaultMaxInterval
}

type retryClient struct {
	inner  Resource
	config RetryConfig
}

var _ Resource = &retryClient{}

// NewRetryClient decorates a Resource with retries. Transport failures and
// 429/5xx responses are re-issued with exponential backoff until the retry
// budget is exhausted; the final failure is surfaced unchanged.
func NewRetryClient(inner Resource, config RetryConfig) Resource {
	return &retryClient{
		inner:  inner,
		config: config,
	}
}

func (c *retryClient) Create(ctx context.Context, body interface{}, out interface{}) error {
	return c.retry(ctx, func() error { return c.inner.Create(ctx, body, out) })
}

func (c *retryClient) GetAll(ctx context.Context, query url.Values, out interface{}) error {
	return c.retry(ctx, func() error { return c.inner.GetAll(ctx, query, out) })
}

func (c *retryClient) Get(ctx context.Context, params Params, out interface{}) error {
	return c.retry(ctx, func() error { return c.inner.Get(ctx, params, out) })
}

func (c *retryClient) Patch(ctx context.Context, params Params, body interface{}, out interface{}) error {
	return c.retry(ctx, func() error { return c.inner.Patch(ctx, params, body, out) })
}

func (c *retryClient) Delete(ctx context.Context, params Params) error {
	return c.retry(ctx, func() error { return c.inner.Delete(ctx, params) })
}

func (c *retryClient) retry(ctx context.Context, operation func() error) error {
	err := operation()
	if !c.config.enabled() {
		return err
	}

	interval := c.config.baseInterval()
	for attempt := 0; attempt < c.config.maxRetries() && shouldRetry(err); attempt++ {
		if waitErr := waitInterval(ctx, interval); waitErr != nil {
			return waitErr
		}
		interval *= 2
		if interval > c.config.maxInterval() {
			interval = c.config.maxInterval()
		}
		err = operation()
	}
	return err
}

// shouldRetry reports whether the failure is worth re-issuing: rate limits,
// remote server errors and transport failures are; everything the client did
// wrong (4xx other than 429, local validation, token failures) is not.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var apiError *svcErrors.APIError
	if errors.As(err, &apiError) {
		return apiError.StatusCode == http.StatusTooManyRequests || apiError.IsServerErrorClass()
	}

	var serviceError *svcErrors.ServiceError
	if errors.As(err, &serviceError) {
		return false
	}

	return true
}

func waitInterval(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
