package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/hafuch-labs/hafuch-cli/internal/core/domain"
	"github.com/hafuch-labs/hafuch-cli/internal/core/hebrew"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driven"
	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driving"
	"github.com/hafuch-labs/hafuch-cli/internal/llmjson"
	"github.com/hafuch-labs/hafuch-cli/internal/logger"
)

// Ensure DiscoveryService implements the interfaces.
var (
	_ driving.DiscoveryService = (*DiscoveryService)(nil)
	_ driven.PromptStoreAware  = (*DiscoveryService)(nil)
)

// defaultDiscoverPrompt is the fallback prompt when no PromptStore is
// configured.
const defaultDiscoverPrompt = `List up to %d Hebrew palindromes (words or phrases whose consonants read the same forward and backward, ignoring vowel points and final letter forms). Theme: %s.
Return ONLY a JSON array of objects with "text" and "source" fields, where "source" is the canonical origin of the phrase if known, otherwise empty.

Example: [{"text": "אבא", "source": ""}]`

// defaultIdentifySourcePrompt is the fallback prompt when no PromptStore
// is configured.
const defaultIdentifySourcePrompt = `Identify the canonical source (book, chapter and verse) of the following Hebrew text, if it appears in the Hebrew Bible or other canonical literature.
Return ONLY a JSON object with a "citation" field. Use an empty string if the source is unknown.

Text: %s`

// DiscoveryService asks an LLM for additional palindromes and for the
// canonical sources of discovered ones. The LLM is an explicitly injected
// dependency; when it is nil every operation fails with
// domain.ErrLLMUnavailable.
type DiscoveryService struct {
	llm         driven.LLMService
	promptStore driven.PromptStore

	// inFlight guards against concurrent lookups for the same result.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDiscoveryService creates a new discovery service.
// The llm parameter is optional (can be nil).
func NewDiscoveryService(llm driven.LLMService) *DiscoveryService {
	return &DiscoveryService{
		llm:      llm,
		inFlight: make(map[string]struct{}),
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses hardcoded default prompts.
func (s *DiscoveryService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Available reports whether an LLM is configured.
func (s *DiscoveryService) Available() bool {
	return s.llm != nil
}

// Discover asks the model for Hebrew palindromes related to theme.
// Every proposal is re-verified with the palindrome predicate; rejected
// proposals are counted, not silently dropped.
func (s *DiscoveryService) Discover(ctx context.Context, theme string, limit int) (*domain.Discovery, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if limit <= 0 {
		limit = 10
	}
	if strings.TrimSpace(theme) == "" {
		theme = "any"
	}

	logger.Section("AI Discovery")
	logger.Debug("Theme: %q, limit: %d, model: %s", theme, limit, s.llm.ModelName())

	promptTemplate := s.loadPrompt(driven.PromptDiscover, defaultDiscoverPrompt)
	prompt := fmt.Sprintf(promptTemplate, limit, theme)

	raw, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	payload := llmjson.ExtractArray(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON array in response", domain.ErrMalformedResponse)
	}

	var proposals []struct {
		Text   string `json:"text"`
		Source string `json:"source"`
	}
	if err := json.Unmarshal([]byte(payload), &proposals); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	discovery := &domain.Discovery{}
	for _, p := range proposals {
		if !hebrew.IsPalindrome(hebrew.Normalise(p.Text)) {
			logger.Debug("Rejected proposal %q: not a palindrome", p.Text)
			discovery.Rejected++
			continue
		}
		discovery.Items = append(discovery.Items, domain.DiscoveredPalindrome{
			Text:   strings.TrimSpace(p.Text),
			Source: strings.TrimSpace(p.Source),
		})
	}

	logger.Info("Discovery: %d accepted, %d rejected", len(discovery.Items), discovery.Rejected)
	return discovery, nil
}

// IdentifySource asks the model for the canonical source of a palindrome.
// Transport and parse failures are recoverable: they are reported in the
// returned record's status, not as errors. Errors are reserved for
// preconditions (no LLM configured, a lookup already in flight).
func (s *DiscoveryService) IdentifySource(ctx context.Context, p domain.Palindrome) (domain.SourceLookup, error) {
	if s.llm == nil {
		return domain.SourceLookup{}, domain.ErrLLMUnavailable
	}
	if err := s.acquire(p.ID); err != nil {
		return domain.SourceLookup{}, err
	}
	defer s.release(p.ID)

	pending := domain.SourceLookup{PalindromeID: p.ID, Status: domain.LookupPending}

	promptTemplate := s.loadPrompt(driven.PromptIdentifySource, defaultIdentifySourcePrompt)
	prompt := fmt.Sprintf(promptTemplate, p.Original)

	raw, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   256,
		Temperature: 0,
	})
	if err != nil {
		logger.Warn("Source lookup for %q failed: %v", p.Original, err)
		return pending.Fail(err.Error()), nil
	}

	payload := llmjson.ExtractObject(raw)
	if payload == "" {
		return pending.Fail(domain.ErrMalformedResponse.Error()), nil
	}

	var response struct {
		Citation string `json:"citation"`
	}
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return pending.Fail(domain.ErrMalformedResponse.Error()), nil
	}

	resolved := pending.Resolve(strings.TrimSpace(response.Citation))
	logger.Debug("Source lookup for %q: %s %q", p.Original, resolved.Status, resolved.Citation)
	return resolved, nil
}

// acquire registers an in-flight lookup for the given result ID.
func (s *DiscoveryService) acquire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[id]; ok {
		return domain.ErrLookupInFlight
	}
	s.inFlight[id] = struct{}{}
	return nil
}

// release removes the in-flight marker for the given result ID.
func (s *DiscoveryService) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// loadPrompt loads a prompt from the store, falling back to the default
// if unavailable.
func (s *DiscoveryService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
