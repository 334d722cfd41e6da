package ollama

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

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})

	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultLLMModel, svc.model)
	assert.Equal(t, DefaultLLMTimeout, svc.client.Timeout)
}

func TestNewLLMService_CustomConfig(t *testing.T) {
	svc := NewLLMService(LLMConfig{
		BaseURL: "http://example.com:11434",
		Model:   "mistral",
	})

	assert.Equal(t, "http://example.com:11434", svc.baseURL)
	assert.Equal(t, "mistral", svc.ModelName())
}

func TestLLMService_Generate(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(generateResponse{Response: "אבא", Done: true})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL, Model: "llama3.2"})

	result, err := svc.Generate(context.Background(), "find palindromes", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "אבא", result)

	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.Equal(t, "find palindromes", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	assert.Nil(t, gotReq.Options)
}

func TestLLMService_Generate_Options(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(generateResponse{Response: "ok", Done: true})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{
		MaxTokens:   256,
		Temperature: 0.7,
		StopWords:   []string{"END"},
	})
	require.NoError(t, err)

	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 256, gotReq.Options.NumPredict)
	assert.InDelta(t, 0.7, gotReq.Options.Temperature, 0.001)
	assert.Equal(t, []string{"END"}, gotReq.Options.Stop)
}

func TestLLMService_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "model not found")
}

func TestLLMService_Generate_Unreachable(t *testing.T) {
	svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := svc.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}

func TestLLMService_Chat(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: "שמש"},
			Done:    true,
		})
	}))
	defer server.Close()

	svc := NewLLMService(LLMConfig{BaseURL: server.URL})

	result, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "you are helpful"},
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, "שמש", result)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 100, gotReq.Options.NumPredict)
}

func TestLLMService_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.Write([]byte(`{"models":[]}`))
		}))
		defer server.Close()

		svc := NewLLMService(LLMConfig{BaseURL: server.URL})
		assert.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewLLMService(LLMConfig{BaseURL: server.URL})
		err := svc.Ping(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("unreachable", func(t *testing.T) {
		svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})
		err := svc.Ping(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ping failed")
	})
}

func TestLLMService_Close(t *testing.T) {
	svc := NewLLMService(LLMConfig{})
	assert.NoError(t, svc.Close())
}
