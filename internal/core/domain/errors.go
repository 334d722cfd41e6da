package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidScanBounds indicates scan options with a non-positive
	// minimum length or a maximum below the minimum.
	ErrInvalidScanBounds = errors.New("invalid scan bounds")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Features requiring it (discovery, source identification) are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrMalformedResponse indicates the AI collaborator returned output
	// that could not be parsed. Distinct from a legitimately empty result.
	ErrMalformedResponse = errors.New("malformed AI response")

	// ErrLookupInFlight indicates a source lookup for the same result is
	// already pending.
	ErrLookupInFlight = errors.New("lookup already in flight")

	// ErrRateLimited indicates the AI provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
