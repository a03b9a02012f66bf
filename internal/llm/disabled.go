package llm

import "context"

// Disabled is used when no Gemini API key is configured. Every call fails with ErrNotConfigured.
type Disabled struct{}

func (Disabled) GenerateJSON(context.Context, JSONRequest, any) error { return ErrNotConfigured }

func (Disabled) GenerateText(context.Context, TextRequest) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) GenerateImages(context.Context, []string) ([]Image, error) {
	return nil, ErrNotConfigured
}
