package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/hebrew"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
	"github.com/hafuch-labs/hafuch-cli/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService finds Hebrew palindromes in arbitrary text.
// It wraps the pure hebrew package, validating options and assigning
// result IDs so lookups can address individual results.
type ScanService struct{}

// NewScanService creates a new scan service.
func NewScanService() *ScanService {
	return &ScanService{}
}

// FindPalindromes scans text for palindromic runs within the given bounds.
func (s *ScanService) FindPalindromes(
	_ context.Context, text string, opts domain.ScanOptions,
) ([]domain.Palindrome, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("scan options: %w", err)
	}

	logger.Section("Palindrome Scan")
	logger.Debug("Input: %d chars, bounds [%d, %d]", len([]rune(text)), opts.MinLength, opts.MaxLength)

	results := hebrew.FindPalindromes(text, opts.MinLength, opts.MaxLength)
	for i := range results {
		results[i].ID = uuid.New().String()
	}

	logger.Info("Found %d distinct palindromes", len(results))
	return results, nil
}

// Normalise reduces text to its consonantal skeleton.
func (s *ScanService) Normalise(text string) string {
	return hebrew.Normalise(text)
}
