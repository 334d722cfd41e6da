package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafuch-labs/hafuch-cli/internal/core/ports/driven"
)

func TestNewLLMService(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		svc, err := NewLLMService(LLMConfig{})
		require.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc, err := NewLLMService(LLMConfig{APIKey: "sk-test"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, svc.baseURL)
		assert.Equal(t, DefaultLLMModel, svc.ModelName())
	})

	t.Run("custom model", func(t *testing.T) {
		svc, err := NewLLMService(LLMConfig{APIKey: "sk-test", Model: "gpt-4o"})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", svc.ModelName())
	})
}

// newTestService creates a service pointed at a test server.
func newTestService(t *testing.T, handler http.HandlerFunc) (*LLMService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewLLMService(LLMConfig{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)
	return svc, server
}

func TestLLMService_Generate(t *testing.T) {
	var gotReq chatCompletionRequest
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Write([]byte(`{"choices":[{"message":{"content":"אבגבא"},"finish_reason":"stop"}]}`))
	})

	result, err := svc.Generate(context.Background(), "suggest palindromes", driven.GenerateOptions{
		MaxTokens:   512,
		Temperature: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "אבגבא", result)

	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "suggest palindromes", gotReq.Messages[0].Content)
	assert.Equal(t, 512, gotReq.MaxTokens)
	assert.InDelta(t, 0.5, gotReq.Temperature, 0.001)
}

func TestLLMService_Generate_APIError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestLLMService_Generate_NoChoices(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestLLMService_Chat(t *testing.T) {
	var gotReq chatCompletionRequest
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"choices":[{"message":{"content":"reply"},"finish_reason":"stop"}]}`))
	})

	result, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	}, driven.ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "reply", result)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be brief", gotReq.Messages[0].Content)
}

func TestLLMService_Ping(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[]}`))
		})

		assert.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("invalid key", func(t *testing.T) {
		svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})

		err := svc.Ping(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}

func TestLLMService_Close(t *testing.T) {
	svc, err := NewLLMService(LLMConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.NoError(t, svc.Close())
}
