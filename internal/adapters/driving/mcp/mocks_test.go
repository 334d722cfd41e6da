package mcp

import (
	"context"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

type mockScanService struct {
	results []domain.Palindrome
	err     error
}

func (m *mockScanService) FindPalindromes(_ context.Context, _ string, _ domain.ScanOptions) ([]domain.Palindrome, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockScanService) Normalise(text string) string {
	return text
}

type mockDiscoveryService struct {
	discovery *domain.Discovery
	err       error
}

func (m *mockDiscoveryService) Discover(_ context.Context, _ string, _ int) (*domain.Discovery, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.discovery == nil {
		return &domain.Discovery{}, nil
	}
	return m.discovery, nil
}

func (m *mockDiscoveryService) IdentifySource(_ context.Context, p domain.Palindrome) (domain.SourceLookup, error) {
	if m.err != nil {
		return domain.SourceLookup{}, m.err
	}
	return domain.SourceLookup{PalindromeID: p.ID, Status: domain.LookupNotFound}, nil
}

func (m *mockDiscoveryService) Available() bool { return true }
