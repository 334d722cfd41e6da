package driving

import (
	"context"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// ScanService finds Hebrew palindromes in arbitrary text.
type ScanService interface {
	// FindPalindromes scans text for palindromic runs within the given
	// bounds. Results are deduplicated by normalised form and ordered by
	// normalised length descending. Empty or non-Hebrew input yields an
	// empty slice, not an error.
	FindPalindromes(ctx context.Context, text string, opts domain.ScanOptions) ([]domain.Palindrome, error)

	// Normalise reduces text to its consonantal skeleton.
	Normalise(text string) string
}
