package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryProvider re-issues failed requests. A synthesis batch is
// all-or-nothing downstream, so a transient provider failure would cost
// the whole paper; the decorator absorbs rate limits and outages up to
// MaxAttempts before surfacing the error.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with exponential backoff and jitter per cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	wait := r.cfg.InitialWait
	invalidSeen := false

	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.cfg.MaxAttempts || !retryable(err, &invalidSeen) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(nextDelay(wait, err)):
		}

		wait = time.Duration(float64(wait) * r.cfg.Multiplier)
		if wait > r.cfg.MaxWait {
			wait = r.cfg.MaxWait
		}
	}
}

// retryable reports whether err is worth another attempt. Malformed
// model output gets a single re-ask; anything the provider cannot fix
// on its own (cancelled context, exhausted token budget) fails
// immediately. Everything else, rate limits, outages and plain network
// errors included, is treated as transient.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	return true
}

// nextDelay picks the sleep before the next attempt. A rate-limited
// provider names its own wait; otherwise the current backoff is
// jittered by up to 20% either way so concurrent generations do not
// re-ask in lockstep.
func nextDelay(wait time.Duration, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	return time.Duration(float64(wait) * (0.8 + 0.4*rand.Float64()))
}
