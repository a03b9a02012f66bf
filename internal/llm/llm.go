// Package llm wraps the generative backends used by the planner:
// Gemini for structured itineraries, free text and images, and Perplexity for web-grounded search answers.
package llm

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"google.golang.org/genai"
)

var (
	// ErrNotConfigured is returned when the backend has no API key.
	ErrNotConfigured = errors.New("llm backend not configured")
	// ErrEmptyResponse is returned when the model produced no usable content.
	ErrEmptyResponse = errors.New("empty model response")
)

var tracer = otel.Tracer("itinera/llm")

// JSONRequest asks for a structured response decoded into the caller's value.
type JSONRequest struct {
	System string
	Prompt string
	Schema *genai.Schema
}

// TextRequest asks for a free-text answer. Model overrides the default text model when set.
type TextRequest struct {
	Model  string
	System string
	Prompt string
}

// Image is one generated picture. PromptIndex is the prompt's position in the request,
// PartIndex the position of the image part inside the model's answer.
type Image struct {
	PromptIndex int
	PartIndex   int
	MIMEType    string
	Data        []byte
}

// Generator is implemented by Gemini and Disabled.
type Generator interface {
	GenerateJSON(ctx context.Context, req JSONRequest, out any) error
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	// GenerateImages returns one image per prompt that succeeded; failed prompts are skipped.
	GenerateImages(ctx context.Context, prompts []string) ([]Image, error)
}
