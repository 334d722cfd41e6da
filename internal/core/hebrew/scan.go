package hebrew

import (
	"sort"
	"strings"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// FindPalindromes enumerates every maximal palindromic run in text under
// the normalisation equivalence, deduplicated by normalised form and
// ordered by normalised length descending.
//
// The scan anchors a candidate at each Hebrew base letter and extends the
// raw window one character at a time, re-normalising at every step.
// Because normalisation only removes characters, the normalised length is
// monotonic in the window length, so a start index is abandoned entirely
// once its normalised form exceeds maxLength.
//
// Callers are expected to pass validated bounds (minLength ≥ 1,
// maxLength ≥ minLength); see domain.ScanOptions.Validate.
func FindPalindromes(text string, minLength, maxLength int) []domain.Palindrome {
	runes := []rune(text)
	var candidates []domain.Palindrome

	for i := range runes {
		if !IsBaseLetter(runes[i]) {
			continue
		}
		for j := i + 2; j <= len(runes); j++ {
			raw := string(runes[i:j])
			form := Normalise(raw)
			length := len([]rune(form))

			if length > maxLength {
				// Extending further can only grow the form.
				break
			}
			if length < minLength {
				continue
			}
			if !IsPalindrome(form) {
				continue
			}

			original := strings.TrimSpace(raw)
			if !endsOnLetter(original) {
				continue
			}

			candidates = append(candidates, domain.Palindrome{
				Normalized: form,
				Original:   original,
				Length:     length,
			})
		}
	}

	return dedupe(candidates)
}

// endsOnLetter reports whether the last character of the trimmed span is a
// Hebrew base letter. Spans trailing off into punctuation or a partial
// citation fragment are rejected so the captured original ends exactly on
// the letter that closes the palindrome.
func endsOnLetter(trimmed string) bool {
	runes := []rune(trimmed)
	if len(runes) == 0 {
		return false
	}
	return IsBaseLetter(runes[len(runes)-1])
}

// dedupe collapses candidates sharing a normalised form, keeping the
// longest (tie: earliest discovered) representative, and returns them
// sorted by normalised length descending. The sort is stable so output
// order is deterministic.
func dedupe(candidates []domain.Palindrome) []domain.Palindrome {
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Length > candidates[b].Length
	})

	seen := make(map[string]struct{}, len(candidates))
	results := make([]domain.Palindrome, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.Normalized]; ok {
			continue
		}
		seen[c.Normalized] = struct{}{}
		results = append(results, c)
	}
	return results
}
