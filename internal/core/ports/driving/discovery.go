package driving

import (
	"context"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// DiscoveryService asks the AI collaborator for additional palindromes
// and for canonical sources of discovered ones. It is optional: when no
// LLM is configured, implementations return domain.ErrLLMUnavailable.
type DiscoveryService interface {
	// Discover asks the model for Hebrew palindromes related to the given
	// theme (which may be empty for a general request). Proposals are
	// re-verified against the palindrome predicate before being returned.
	// A response that cannot be parsed is reported as
	// domain.ErrMalformedResponse, never as an empty Discovery.
	Discover(ctx context.Context, theme string, limit int) (*domain.Discovery, error)

	// IdentifySource asks the model for the canonical (e.g. biblical)
	// source of a palindrome's original text. The returned record replaces
	// the pending one keyed by the palindrome's ID.
	IdentifySource(ctx context.Context, p domain.Palindrome) (domain.SourceLookup, error)

	// Available reports whether an LLM is configured and reachable enough
	// to attempt requests.
	Available() bool
}
