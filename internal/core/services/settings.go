package services

import (
	"fmt"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driven"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyScanMinLength = "scan.min_length"
	keyScanMaxLength = "scan.max_length"
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMBaseURL    = "llm.base_url"
	keyLLMAPIKey     = "llm.api_key"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Scan: domain.ScanSettings{
			MinLength: s.getInt(keyScanMinLength, defaults.Scan.MinLength),
			MaxLength: s.getInt(keyScanMaxLength, defaults.Scan.MaxLength),
		},
		LLM: domain.LLMSettings{
			Provider: s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyScanMinLength, settings.Scan.MinLength); err != nil {
		return fmt.Errorf("save scan min_length: %w", err)
	}
	if err := s.configStore.Set(keyScanMaxLength, settings.Scan.MaxLength); err != nil {
		return fmt.Errorf("save scan max_length: %w", err)
	}

	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	return nil
}

// SetScanBounds updates the default scan bounds.
func (s *SettingsService) SetScanBounds(minLength, maxLength int) error {
	opts := domain.ScanOptions{MinLength: minLength, MaxLength: maxLength}.WithDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Scan.MinLength = opts.MinLength
	settings.Scan.MaxLength = opts.MaxLength
	return s.Save(settings)
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if model == "" {
		model = domain.DefaultLLMModels()[provider]
	}

	settings.LLM.Provider = provider
	settings.LLM.Model = model
	settings.LLM.APIKey = apiKey
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging
// the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// getString reads a string key with a fallback default.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

// getInt reads an integer key with a fallback default.
func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v != 0 {
		return v
	}
	return fallback
}

// getProvider reads a provider key with a fallback default.
func (s *SettingsService) getProvider(key string, fallback domain.AIProvider) domain.AIProvider {
	v := domain.AIProvider(s.configStore.GetString(key))
	if v.IsValid() {
		return v
	}
	return fallback
}
