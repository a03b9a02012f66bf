package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/config"
)

func testPerplexityConfig(baseURL string) config.PerplexityConfig {
	return config.PerplexityConfig{
		APIKey:            "pplx-test",
		BaseURL:           baseURL + "/",
		Model:             "sonar",
		Temperature:       0.2,
		TopP:              0.9,
		MaxTokens:         1400,
		SearchContextSize: "high",
		Timeout:           5 * time.Second,
	}
}

func TestPerplexity_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer pplx-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","model":"sonar","choices":[{"index":0,"message":{"role":"assistant","content":"{\"ok\":true}"}}],"citations":["https://example.com"]}`))
	}))
	defer srv.Close()

	p := NewPerplexity(testPerplexityConfig(srv.URL), srv.Client())
	resp, err := p.Complete(context.Background(), CompletionRequest{
		System:        "sys",
		Prompt:        "user",
		MaxTokens:     1200,
		RecencyFilter: "month",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text())
	assert.Equal(t, []string{"https://example.com"}, resp.Citations)

	assert.Equal(t, "sonar", got["model"])
	assert.Equal(t, "web", got["search_mode"])
	assert.Equal(t, false, got["stream"])
	assert.Equal(t, false, got["return_images"])
	assert.Equal(t, false, got["return_related_questions"])
	assert.Equal(t, float64(1200), got["max_tokens"])
	assert.Equal(t, 0.2, got["temperature"])
	assert.Equal(t, "month", got["search_recency_filter"])
	assert.Equal(t, map[string]any{"search_context_size": "high"}, got["web_search_options"])
	assert.NotContains(t, got, "reasoning_effort")
	assert.NotContains(t, got, "search_domain_filter")

	msgs := got["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": "sys"}, msgs[0])
	assert.Equal(t, map[string]any{"role": "user", "content": "user"}, msgs[1])
}

func TestPerplexity_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewPerplexity(testPerplexityConfig(srv.URL), srv.Client())
	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestPerplexity_NotConfigured(t *testing.T) {
	p := NewPerplexity(config.PerplexityConfig{BaseURL: "http://unused"}, nil)
	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompletionResponse_TextEmpty(t *testing.T) {
	var r *CompletionResponse
	assert.Equal(t, "", r.Text())
	assert.Equal(t, "", (&CompletionResponse{}).Text())
}
