package services

import (
	"context"

	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driven"
)

// mockLLM is a test double for driven.LLMService with overridable
// behaviour per test.
type mockLLM struct {
	GenerateFunc func(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error)
	PingFunc     func(ctx context.Context) error

	// prompts records every prompt passed to Generate.
	prompts []string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, opts)
	}
	return "", nil
}

func (m *mockLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return "", nil
}

func (m *mockLLM) ModelName() string {
	return "mock-model"
}

func (m *mockLLM) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *mockLLM) Close() error {
	return nil
}

// mockPromptStore is a test double for driven.PromptStore.
type mockPromptStore struct {
	prompts map[string]string
	err     error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.prompts[name], nil
}

func (m *mockPromptStore) Reload() {}
