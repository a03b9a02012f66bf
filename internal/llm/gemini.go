package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"itinera/internal/config"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements Generator on the Gemini API.
type Gemini struct {
	models contentGenerator
	cfg    config.GeminiConfig
	log    *zap.Logger
}

// NewGemini connects to the Gemini API. It returns a Disabled generator when no key is configured.
func NewGemini(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return Disabled{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, cfg, log), nil
}

func newGemini(models contentGenerator, cfg config.GeminiConfig, log *zap.Logger) *Gemini {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gemini{models: models, cfg: cfg, log: log}
}

func (g *Gemini) textConfig(system string) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.cfg.Temperature)),
		TopP:            genai.Ptr(float32(g.cfg.TopP)),
		TopK:            genai.Ptr(float32(g.cfg.TopK)),
		MaxOutputTokens: int32(g.cfg.MaxOutputTokens),
	}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return gc
}

func (g *Gemini) generate(ctx context.Context, model, prompt string, gc *genai.GenerateContentConfig, timeout time.Duration) (*genai.GenerateContentResponse, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return g.models.GenerateContent(ctx, model, contents, gc)
}

func (g *Gemini) GenerateJSON(ctx context.Context, req JSONRequest, out any) error {
	ctx, span := tracer.Start(ctx, "gemini.GenerateJSON", trace.WithAttributes(
		attribute.String("llm.model", g.cfg.TextModel),
	))
	defer span.End()

	gc := g.textConfig(req.System)
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = req.Schema
	}

	start := time.Now()
	resp, err := g.generate(ctx, g.cfg.TextModel, req.Prompt, gc, g.cfg.Timeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content")
		return fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	g.log.Debug("gemini json response",
		zap.String("model", g.cfg.TextModel),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	if text == "" {
		span.SetStatus(codes.Error, "empty response")
		return ErrEmptyResponse
	}
	if err := ExtractJSON(text, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode response")
		return fmt.Errorf("gemini decode: %w", err)
	}
	return nil
}

func (g *Gemini) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.cfg.TextModel
	}
	ctx, span := tracer.Start(ctx, "gemini.GenerateText", trace.WithAttributes(
		attribute.String("llm.model", model),
	))
	defer span.End()

	var gc *genai.GenerateContentConfig
	if req.System != "" {
		gc = &genai.GenerateContentConfig{SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser)}
	}
	resp, err := g.generate(ctx, model, req.Prompt, gc, g.cfg.Timeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content")
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		span.SetStatus(codes.Error, "empty response")
		return "", ErrEmptyResponse
	}
	span.SetAttributes(attribute.Int("llm.response_chars", len(text)))
	return text, nil
}

func (g *Gemini) GenerateImages(ctx context.Context, prompts []string) ([]Image, error) {
	ctx, span := tracer.Start(ctx, "gemini.GenerateImages", trace.WithAttributes(
		attribute.String("llm.model", g.cfg.ImageModel),
		attribute.Int("llm.prompts", len(prompts)),
	))
	defer span.End()

	results := make([]*Image, len(prompts))
	var wg sync.WaitGroup
	for i, p := range prompts {
		wg.Add(1)
		go func(i int, prompt string) {
			defer wg.Done()
			img, err := g.generateImage(ctx, prompt)
			if err != nil {
				g.log.Warn("image generation failed", zap.Int("prompt_index", i), zap.Error(err))
				return
			}
			img.PromptIndex = i
			results[i] = img
		}(i, p)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	images := make([]Image, 0, len(prompts))
	for _, img := range results {
		if img != nil {
			images = append(images, *img)
		}
	}
	span.SetAttributes(attribute.Int("llm.images", len(images)))
	return images, nil
}

func (g *Gemini) generateImage(ctx context.Context, prompt string) (*Image, error) {
	gc := &genai.GenerateContentConfig{ResponseModalities: []string{"IMAGE", "TEXT"}}
	resp, err := g.generate(ctx, g.cfg.ImageModel, prompt, gc, g.cfg.ImageTimeout)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}
	for idx, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &Image{PartIndex: idx, MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
		}
	}
	return nil, ErrEmptyResponse
}
