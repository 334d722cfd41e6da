package domain

// DiscoveredPalindrome is a single palindrome proposed by the AI
// collaborator, optionally with the source it attributes it to.
type DiscoveredPalindrome struct {
	// Text is the palindrome as returned by the model.
	Text string

	// Source is the model's attribution (e.g. a biblical reference).
	// May be empty.
	Source string
}

// Discovery is the outcome of an AI palindrome discovery request.
// A Discovery with zero Items is a legitimate empty result; a response
// that could not be parsed at all is reported as ErrMalformedResponse
// and never as an empty Discovery.
type Discovery struct {
	// Items are the palindromes the model proposed, already re-verified
	// against the palindrome predicate.
	Items []DiscoveredPalindrome

	// Rejected counts proposals that failed re-verification and were
	// dropped.
	Rejected int
}

// LookupStatus is the lifecycle state of a citation lookup.
type LookupStatus string

// Lookup states.
const (
	// LookupPending means the lookup has been requested but not resolved.
	LookupPending LookupStatus = "pending"

	// LookupFound means the model identified a canonical source.
	LookupFound LookupStatus = "found"

	// LookupNotFound means the model answered but knew no source.
	LookupNotFound LookupStatus = "not_found"

	// LookupFailed means the request or response parsing failed.
	LookupFailed LookupStatus = "failed"
)

// SourceLookup records the outcome of asking the AI collaborator for the
// canonical source of a palindrome. Records are immutable: each state
// transition produces a new record that replaces its predecessor by
// PalindromeID, never a mutation of a shared value.
type SourceLookup struct {
	// PalindromeID keys the lookup to the scan result it annotates.
	PalindromeID string

	// Status is the lifecycle state of this lookup.
	Status LookupStatus

	// Citation is the identified source. Set only when Status is LookupFound.
	Citation string

	// Reason carries a human-readable failure description when Status is
	// LookupFailed.
	Reason string
}

// Resolve returns a new record marking the lookup as resolved with the
// given citation, or as not found when the citation is empty.
func (l SourceLookup) Resolve(citation string) SourceLookup {
	next := SourceLookup{PalindromeID: l.PalindromeID, Citation: citation}
	if citation == "" {
		next.Status = LookupNotFound
	} else {
		next.Status = LookupFound
	}
	return next
}

// Fail returns a new record marking the lookup as failed.
func (l SourceLookup) Fail(reason string) SourceLookup {
	return SourceLookup{
		PalindromeID: l.PalindromeID,
		Status:       LookupFailed,
		Reason:       reason,
	}
}
