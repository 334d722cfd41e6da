package hebrew

import (
	"regexp"
	"strings"
)

// Unicode ranges for the Hebrew block.
const (
	// firstBaseLetter is א (aleph).
	firstBaseLetter = 'א'
	// lastBaseLetter is ת (tav).
	lastBaseLetter = 'ת'
	// firstMark and lastMark bound the combining marks used for cantillation
	// and vowel points (niqqud).
	firstMark = '֑'
	lastMark  = 'ׇ'
)

// citationPattern matches inline chapter:verse citation markers such as
// "מט,י" — an optional opening quote or bracket, one to three Hebrew
// letters, a separator run, one to three Hebrew letters, and an optional
// closing quote or bracket. The separator run must contain at least one
// comma or colon; a bare space between two short words is an ordinary
// word break, not a citation. Matches are replaced with a single space so
// the citation letters never participate in palindrome detection.
var citationPattern = regexp.MustCompile(`["'(\[]?[א-ת]{1,3}[,:\s]*[,:][,:\s]*[א-ת]{1,3}["')\]]?`)

// finalForms maps the five sofit (final) letter forms to their base form.
// Final forms are positionally distinct but phonetically identical, so a
// word and its mirror are compared on base forms only.
var finalForms = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// IsBaseLetter reports whether r is one of the 22 Hebrew base letters
// (final forms included, since they occupy the same block).
func IsBaseLetter(r rune) bool {
	return r >= firstBaseLetter && r <= lastBaseLetter
}

// isMark reports whether r is a Hebrew combining mark (niqqud or
// cantillation).
func isMark(r rune) bool {
	return r >= firstMark && r <= lastMark
}

// FoldFinal returns the base (medial) form of r if r is a sofit letter,
// otherwise r unchanged.
func FoldFinal(r rune) rune {
	if base, ok := finalForms[r]; ok {
		return base
	}
	return r
}

// Normalise reduces text to its consonantal skeleton: citation markers are
// stripped, combining marks dropped, final letter forms folded to their
// base form, and everything outside the Hebrew base-letter block removed.
// The result contains letters only, with no spacing, and may be empty.
// Normalise is idempotent.
func Normalise(text string) string {
	stripped := citationPattern.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if isMark(r) {
			continue
		}
		r = FoldFinal(r)
		if IsBaseLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
