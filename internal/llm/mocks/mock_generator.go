package mocks

import (
	"context"

	"itinera/internal/llm"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateJSON(ctx context.Context, req llm.JSONRequest, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}

func (m *MockGenerator) GenerateText(ctx context.Context, req llm.TextRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) GenerateImages(ctx context.Context, prompts []string) ([]llm.Image, error) {
	args := m.Called(ctx, prompts)
	if f, ok := args.Get(0).(func([]string) []llm.Image); ok {
		return f(prompts), args.Error(1)
	}
	if v := args.Get(0); v != nil {
		return v.([]llm.Image), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*llm.CompletionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
