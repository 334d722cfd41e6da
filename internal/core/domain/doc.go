// Package domain defines the core business entities for hafuch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Palindrome: A deduplicated palindromic run found in a scan
//   - ScanOptions: Length bounds for a palindrome scan
//   - Discovery: The outcome of an AI palindrome discovery request
//   - SourceLookup: An immutable per-result citation lookup record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
