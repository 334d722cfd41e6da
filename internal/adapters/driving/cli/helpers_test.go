package cli

import (
	"context"
	"errors"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
)

// setupTestServices installs mock services and returns a cleanup func
// that restores the previous ones.
func setupTestServices() func() {
	oldScan := scanService
	oldDiscovery := discoveryService
	oldSettings := settingsService

	scanService = &mockScanService{}
	discoveryService = &mockDiscoveryService{}
	settingsService = &mockSettingsService{}

	return func() {
		scanService = oldScan
		discoveryService = oldDiscovery
		settingsService = oldSettings
	}
}

type mockScanService struct{}

func (m *mockScanService) FindPalindromes(_ context.Context, _ string, _ domain.ScanOptions) ([]domain.Palindrome, error) {
	return []domain.Palindrome{
		{ID: "pal-1", Normalized: "אבגבא", Original: "אבגבא", Length: 5},
		{ID: "pal-2", Normalized: "שמש", Original: "שָׁמֶשׁ", Length: 3},
	}, nil
}

func (m *mockScanService) Normalise(text string) string {
	return text
}

type mockScanServiceError struct{}

func (m *mockScanServiceError) FindPalindromes(_ context.Context, _ string, _ domain.ScanOptions) ([]domain.Palindrome, error) {
	return nil, errors.New("mock scan error")
}

func (m *mockScanServiceError) Normalise(text string) string {
	return text
}

type mockScanServiceEmpty struct{}

func (m *mockScanServiceEmpty) FindPalindromes(_ context.Context, _ string, _ domain.ScanOptions) ([]domain.Palindrome, error) {
	return []domain.Palindrome{}, nil
}

func (m *mockScanServiceEmpty) Normalise(text string) string {
	return text
}

type mockDiscoveryService struct{}

func (m *mockDiscoveryService) Discover(_ context.Context, _ string, _ int) (*domain.Discovery, error) {
	return &domain.Discovery{
		Items: []domain.DiscoveredPalindrome{
			{Text: "אבא", Source: ""},
			{Text: "ילד כותב בתוך דלי", Source: "folk saying"},
		},
		Rejected: 1,
	}, nil
}

func (m *mockDiscoveryService) IdentifySource(_ context.Context, p domain.Palindrome) (domain.SourceLookup, error) {
	return domain.SourceLookup{
		PalindromeID: p.ID,
		Status:       domain.LookupFound,
		Citation:     "Genesis 1:1",
	}, nil
}

func (m *mockDiscoveryService) Available() bool { return true }

type mockDiscoveryServiceError struct{}

func (m *mockDiscoveryServiceError) Discover(_ context.Context, _ string, _ int) (*domain.Discovery, error) {
	return nil, errors.New("mock discovery error")
}

func (m *mockDiscoveryServiceError) IdentifySource(_ context.Context, _ domain.Palindrome) (domain.SourceLookup, error) {
	return domain.SourceLookup{}, errors.New("mock lookup error")
}

func (m *mockDiscoveryServiceError) Available() bool { return false }

type mockSettingsService struct{}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	return &settings, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetScanBounds(minLength, maxLength int) error {
	opts := domain.ScanOptions{MinLength: minLength, MaxLength: maxLength}
	return opts.Validate()
}

func (m *mockSettingsService) SetLLMProvider(_ domain.AIProvider, _, _ string) error { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ValidateLLMConfig() error { return nil }
