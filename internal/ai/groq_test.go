package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	var captured request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "Olá! Qual serviço você deseja?"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 100, "completion_tokens": 20}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "llama-3.1-8b-instant", 0.4, 5*time.Second)
	client.SetAPIURL(server.URL)

	reply, err := client.Complete(context.Background(), "você é um assistente de agenda", []Message{
		{Role: "user", Content: "oi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Olá! Qual serviço você deseja?", reply)
	assert.Equal(t, "llama-3.1-8b-instant", captured.Model)
	assert.Equal(t, 0.4, captured.Temperature)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "você é um assistente de agenda", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "llama-3.1-8b-instant", 0.4, 5*time.Second)
	client.SetAPIURL(server.URL)

	_, err := client.Complete(context.Background(), "sistema", []Message{{Role: "user", Content: "oi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "llama-3.1-8b-instant", 0.4, 5*time.Second)
	client.SetAPIURL(server.URL)

	_, err := client.Complete(context.Background(), "sistema", []Message{{Role: "user", Content: "oi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem conteúdo")
}

func TestClient_Complete_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient("test-key", "llama-3.1-8b-instant", 0.4, 5*time.Second)
	client.SetAPIURL(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "sistema", []Message{{Role: "user", Content: "oi"}})
	assert.Error(t, err)
}
