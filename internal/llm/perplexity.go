package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"itinera/internal/config"
)

// Searcher answers prompts with web-grounded completions.
type Searcher interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is a single system+user exchange. Zero values fall back to the client's configuration.
type CompletionRequest struct {
	System             string
	Prompt             string
	Model              string
	Temperature        float64
	TopP               float64
	MaxTokens          int
	ReasoningEffort    string
	WebSearchOptions   map[string]any
	SearchDomainFilter []string
	RecencyFilter      string
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type CompletionResponse struct {
	ID        string   `json:"id"`
	Model     string   `json:"model"`
	Choices   []Choice `json:"choices"`
	Citations []string `json:"citations,omitempty"`
}

// Text returns the first choice's content, or "".
func (r *CompletionResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

type completionBody struct {
	Model                  string         `json:"model"`
	Messages               []Message      `json:"messages"`
	SearchMode             string         `json:"search_mode"`
	MaxTokens              int            `json:"max_tokens"`
	Temperature            float64        `json:"temperature"`
	TopP                   float64        `json:"top_p"`
	Stream                 bool           `json:"stream"`
	ReturnImages           bool           `json:"return_images"`
	ReturnRelatedQuestions bool           `json:"return_related_questions"`
	ReasoningEffort        string         `json:"reasoning_effort,omitempty"`
	WebSearchOptions       map[string]any `json:"web_search_options,omitempty"`
	SearchDomainFilter     []string       `json:"search_domain_filter,omitempty"`
	SearchRecencyFilter    string         `json:"search_recency_filter,omitempty"`
}

// Perplexity calls the Perplexity chat completions API.
type Perplexity struct {
	cfg    config.PerplexityConfig
	client *http.Client
}

// NewPerplexity builds a client. A nil httpClient gets an otelhttp-instrumented default with cfg.Timeout.
func NewPerplexity(cfg config.PerplexityConfig, httpClient *http.Client) *Perplexity {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Perplexity{cfg: cfg, client: httpClient}
}

func (p *Perplexity) body(req CompletionRequest) completionBody {
	b := completionBody{
		Model: p.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		SearchMode:          "web",
		MaxTokens:           p.cfg.MaxTokens,
		Temperature:         p.cfg.Temperature,
		TopP:                p.cfg.TopP,
		ReasoningEffort:     req.ReasoningEffort,
		WebSearchOptions:    req.WebSearchOptions,
		SearchDomainFilter:  req.SearchDomainFilter,
		SearchRecencyFilter: req.RecencyFilter,
	}
	if req.Model != "" {
		b.Model = req.Model
	}
	if req.MaxTokens > 0 {
		b.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		b.Temperature = req.Temperature
	}
	if req.TopP > 0 {
		b.TopP = req.TopP
	}
	if b.WebSearchOptions == nil && p.cfg.SearchContextSize != "" {
		b.WebSearchOptions = map[string]any{"search_context_size": p.cfg.SearchContextSize}
	}
	return b
}

func (p *Perplexity) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if p.cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	body := p.body(req)

	ctx, span := tracer.Start(ctx, "perplexity.Complete", trace.WithAttributes(
		attribute.String("llm.model", body.Model),
		attribute.Int("llm.max_tokens", body.MaxTokens),
	))
	defer span.End()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("perplexity request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read perplexity response: %w", err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("perplexity status %d: %s", resp.StatusCode, truncate(string(raw), 200))
		span.SetStatus(codes.Error, "bad status")
		return nil, err
	}

	var out CompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("decode perplexity response: %w", err)
	}
	return &out, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
