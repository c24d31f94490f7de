package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "plain 429 is retryable",
			err:  &ProviderError{HTTPStatus: 429, Code: "rate_limit_exceeded"},
			want: true,
		},
		{
			name: "quota exhaustion is permanent",
			err:  &ProviderError{HTTPStatus: 429, Code: "insufficient_quota"},
			want: false,
		},
		{
			name: "server error is permanent",
			err:  &ProviderError{HTTPStatus: 500},
			want: false,
		},
		{
			name: "auth error is permanent",
			err:  &ProviderError{HTTPStatus: 401},
			want: false,
		},
		{
			name: "non-provider error is permanent",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "wrapped 429 is retryable",
			err:  errors.Join(errors.New("chat call"), &ProviderError{HTTPStatus: 429, Code: "rate_limit_exceeded"}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), DefaultRetryPolicy, func(context.Context) (string, error) {
		calls++
		return "", &ProviderError{HTTPStatus: 429, Code: "insufficient_quota"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := withRetry(context.Background(), DefaultRetryPolicy, func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := withRetry(ctx, DefaultRetryPolicy, func(context.Context) (string, error) {
		return "", &ProviderError{HTTPStatus: 429, Code: "rate_limit_exceeded"}
	})
	require.Error(t, err)
	// The cancellation short-circuits the backoff sleep.
	assert.Contains(t, err.Error(), "cancelled while backing off")
}

func TestProviderErrorMessage(t *testing.T) {
	err := &ProviderError{Message: "too many requests", HTTPStatus: 429, Code: "rate_limit_exceeded"}
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate_limit_exceeded")
	assert.Contains(t, err.Error(), "too many requests")
}
