package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy tunes the transient-error retry behavior of bridge calls.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first.
	MaxRetries int

	// BaseBackoff is the first wait; each retry doubles it.
	BaseBackoff time.Duration
}

// DefaultRetryPolicy is used when the config does not override it.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseBackoff: 2 * time.Second}

// insufficientQuotaCode marks a 429 that no amount of waiting will fix.
const insufficientQuotaCode = "insufficient_quota"

// ProviderError carries the provider's HTTP status and error code across the
// bridge so the retry policy can classify it.
type ProviderError struct {
	Message    string
	HTTPStatus int
	Code       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d, code %q): %s", e.HTTPStatus, e.Code, e.Message)
}

// retryable reports whether the error is a rate limit worth waiting out.
// Quota exhaustion is permanent: the body says the account is out of credit,
// not that the window is full.
func retryable(err error) bool {
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.HTTPStatus == 429 && pe.Code != insufficientQuotaCode
}

// withRetry runs fn under the transient-error policy: up to
// policy.MaxRetries attempts after the first, backing off
// BaseBackoff * 2^attempt between tries.
func withRetry[T any](ctx context.Context, policy RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !retryable(err) || attempt >= policy.MaxRetries {
			return zero, err
		}
		lastErr = err

		backoff := policy.BaseBackoff * (1 << attempt)
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("cancelled while backing off from rate limit: %w", lastErr)
		case <-time.After(backoff):
		}
	}
}
