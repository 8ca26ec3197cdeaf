package swish

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Retrier wraps an API with exponential backoff and jitter. The underlying
// client never retries on its own; wrap it in a Retrier when resilience
// against transient failures is wanted. Only transport failures and 5xx
// provider errors are retried; provider rejections and configuration
// problems come back immediately.
type Retrier struct {
	inner      API
	baseDelay  time.Duration
	maxRetries int
}

var _ API = (*Retrier)(nil)

func NewRetrier(inner API, baseDelay time.Duration, maxRetries int) *Retrier {
	return &Retrier{
		inner:      inner,
		baseDelay:  baseDelay,
		maxRetries: maxRetries,
	}
}

func (r *Retrier) CreatePayment(ctx context.Context, params PaymentParams) (*CreatedPayment, error) {
	return retryOp(r, ctx, func(ctx context.Context) (*CreatedPayment, error) {
		return r.inner.CreatePayment(ctx, params)
	})
}

func (r *Retrier) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return retryOp(r, ctx, func(ctx context.Context) (*Payment, error) {
		return r.inner.GetPayment(ctx, paymentID)
	})
}

func (r *Retrier) CreateRefund(ctx context.Context, params RefundParams) (*CreatedRefund, error) {
	return retryOp(r, ctx, func(ctx context.Context) (*CreatedRefund, error) {
		return r.inner.CreateRefund(ctx, params)
	})
}

func (r *Retrier) GetRefund(ctx context.Context, refundID string) (*Refund, error) {
	return retryOp(r, ctx, func(ctx context.Context) (*Refund, error) {
		return r.inner.GetRefund(ctx, refundID)
	})
}

func retryOp[T any](r *Retrier, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			time.Sleep(r.backoff(attempt))
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatus >= 500
	}

	var reqErrs RequestErrors
	if errors.As(err, &reqErrs) {
		// Structured rejections are validation failures; retrying resends
		// the same invalid request.
		return false
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return false
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Anything left is a transport-level failure.
	return true
}

// Backoff calculation with exponential delay and jitter
func (r *Retrier) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}
