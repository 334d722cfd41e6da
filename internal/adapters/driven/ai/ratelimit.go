package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driven"
)

// RateLimitConfig holds rate limiting configuration for LLM calls.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is a conservative default well below typical provider
// limits, so interactive lookups never trip a quota.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 1.0, BurstSize: 3}

// Ensure RateLimitedLLM implements the interface.
var _ driven.LLMService = (*RateLimitedLLM)(nil)

// RateLimitedLLM wraps an LLMService with a token-bucket rate limiter and
// a backoff window for 429 responses. The TUI fires a lookup per result
// entry; without this a burst of navigation would hammer the provider.
type RateLimitedLLM struct {
	inner   driven.LLMService
	limiter *rate.Limiter

	mu      sync.Mutex
	retryAt time.Time
}

// NewRateLimitedLLM wraps svc with the given limits.
func NewRateLimitedLLM(svc driven.LLMService, cfg RateLimitConfig) *RateLimitedLLM {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultRateLimit
	}
	return &RateLimitedLLM{
		inner:   svc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimitedLLM) wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a rate limit error and sets a backoff period.
// Call this when receiving a 429 response from the provider.
func (r *RateLimitedLLM) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Generate produces text completion from a prompt, rate limited.
func (r *RateLimitedLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	return r.inner.Generate(ctx, prompt, opts)
}

// Chat conducts a multi-turn conversation, rate limited.
func (r *RateLimitedLLM) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	return r.inner.Chat(ctx, messages, opts)
}

// ModelName returns the name of the underlying LLM model.
func (r *RateLimitedLLM) ModelName() string {
	return r.inner.ModelName()
}

// Ping validates the underlying service is reachable. Pings are not rate
// limited; they are lightweight and run at startup.
func (r *RateLimitedLLM) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

// Close releases resources of the underlying service.
func (r *RateLimitedLLM) Close() error {
	return r.inner.Close()
}
