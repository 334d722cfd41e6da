package domain

// Scan bound defaults applied when a caller leaves ScanOptions zero-valued.
const (
	// DefaultMinLength is the default minimum normalised palindrome length.
	DefaultMinLength = 3

	// DefaultMaxLength is the default maximum normalised palindrome length.
	// It is the only safety valve against pathological inputs: the scan is
	// quadratic per start index without it.
	DefaultMaxLength = 50
)

// Palindrome is a single palindromic run found in scanned text.
// It is immutable after creation.
type Palindrome struct {
	// ID uniquely identifies the result within a scan, so that lookups
	// can address it. Empty until assigned by the scan service.
	ID string

	// Normalized is the letters-only, vowel-free, final-form-folded form
	// that was tested for palindromicity.
	Normalized string

	// Original is the whitespace-trimmed raw span the form was derived
	// from. It always ends on the Hebrew letter that closes the palindrome.
	Original string

	// Length is the character count of Normalized.
	Length int
}

// ScanOptions configures the length bounds of a palindrome scan.
// Zero values select the defaults.
type ScanOptions struct {
	// MinLength is the minimum normalised length to report (default 3).
	MinLength int

	// MaxLength is the maximum normalised length to report (default 50).
	MaxLength int
}

// WithDefaults returns a copy of the options with zero-valued bounds
// replaced by the defaults.
func (o ScanOptions) WithDefaults() ScanOptions {
	if o.MinLength == 0 {
		o.MinLength = DefaultMinLength
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}
	return o
}

// Validate rejects misconfigured bounds. A negative minimum, or a maximum
// below the minimum, is a caller error rather than something to silently
// repair.
func (o ScanOptions) Validate() error {
	if o.MinLength <= 0 {
		return ErrInvalidScanBounds
	}
	if o.MaxLength < o.MinLength {
		return ErrInvalidScanBounds
	}
	return nil
}
