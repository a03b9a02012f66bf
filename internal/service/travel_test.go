package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"itinera/internal/config"
	"itinera/internal/llm"
	llmMocks "itinera/internal/llm/mocks"
	"itinera/internal/model"
)

var perplexityCfg = config.PerplexityConfig{MaxTokens: 3500, FoodMaxTokens: 2500}

func completion(text string) *llm.CompletionResponse {
	return &llm.CompletionResponse{Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", Content: text}}}}
}

func TestTravelService_TravelOptions(t *testing.T) {
	ctx := context.Background()
	req := model.TravelOptionsRequest{OriginCity: "Mumbai", DestinationCity: "Goa"}

	tests := []struct {
		name      string
		reply     *llm.CompletionResponse
		replyErr  error
		wantModes []string
		wantErr   error
	}{
		{
			name: "mode map ordered canonically",
			reply: completion("Here you go:\n```json\n" + `{
				"origin": "Mumbai",
				"destination": "Goa",
				"travel_options": {
					"flight": [{"route_name": "BOM-GOI", "carriers": ["IndiGo"]}],
					"ferry": [{"route_name": "Coastal"}],
					"train": [{"route_name": "Konkan Kanya Express"}],
					"bus": []
				}
			}` + "\n```"),
			wantModes: []string{"train", "flight", "ferry"},
		},
		{
			name:      "already normalized modes",
			reply:     completion(`{"origin_city":"Mumbai","destination_city":"Goa","modes":[{"mode":"bus","options":[{"route_name":"Volvo"}]}]}`),
			wantModes: []string{"bus"},
		},
		{
			name:      "undecodable reply falls back",
			reply:     completion("sorry, no idea"),
			wantModes: []string{},
		},
		{
			name:      "transport error falls back",
			replyErr:  errors.New("connection reset"),
			wantModes: []string{},
		},
		{
			name:     "not configured propagates",
			replyErr: llm.ErrNotConfigured,
			wantErr:  llm.ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := new(llmMocks.MockSearcher)
			search.On("Complete", ctx, mock.MatchedBy(func(r llm.CompletionRequest) bool {
				return r.MaxTokens == 3500 && r.System != ""
			})).Return(tt.reply, tt.replyErr)

			svc := NewTravelService(search, perplexityCfg, nil)
			out, err := svc.TravelOptions(ctx, req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Mumbai", out.OriginCity)
			assert.Equal(t, "Goa", out.DestinationCity)
			modes := []string{}
			for _, m := range out.Modes {
				modes = append(modes, m.Mode)
				for _, o := range m.Options {
					assert.NotNil(t, o.Carriers)
					assert.NotNil(t, o.Sources)
				}
			}
			assert.Equal(t, tt.wantModes, modes)
		})
	}
}

func TestTravelService_TravelOptions_RecencyAndValidation(t *testing.T) {
	ctx := context.Background()
	search := new(llmMocks.MockSearcher)
	search.On("Complete", ctx, mock.MatchedBy(func(r llm.CompletionRequest) bool {
		return r.RecencyFilter == "week"
	})).Return(completion("{}"), nil)

	svc := NewTravelService(search, perplexityCfg, nil)
	week := " week "
	_, err := svc.TravelOptions(ctx, model.TravelOptionsRequest{OriginCity: "Pune", DestinationCity: "Nashik", RecencyFilter: &week})
	require.NoError(t, err)
	search.AssertExpectations(t)

	_, err = svc.TravelOptions(ctx, model.TravelOptionsRequest{OriginCity: "Pune"})
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "destination_city", ve.Field)
}

func TestTravelService_FoodOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes outlets", func(t *testing.T) {
		search := new(llmMocks.MockSearcher)
		search.On("Complete", ctx, mock.MatchedBy(func(r llm.CompletionRequest) bool {
			return r.MaxTokens == 2500
		})).Return(completion(`{"city":"Goa","outlets":[{"name":"Fisherman's Wharf","cuisine":"Goan"}]}`), nil)

		svc := NewTravelService(search, perplexityCfg, nil)
		out, err := svc.FoodOptions(ctx, model.FoodOptionsRequest{City: "Goa"})

		require.NoError(t, err)
		require.Len(t, out.Outlets, 1)
		assert.Equal(t, "Fisherman's Wharf", out.Outlets[0].Name)
		assert.Equal(t, "Goan", *out.Outlets[0].Cuisine)
		assert.Equal(t, []string{}, out.Outlets[0].Highlights)
	})

	t.Run("fallback keeps city", func(t *testing.T) {
		search := new(llmMocks.MockSearcher)
		search.On("Complete", ctx, mock.Anything).Return(completion(""), nil)

		svc := NewTravelService(search, perplexityCfg, nil)
		out, err := svc.FoodOptions(ctx, model.FoodOptionsRequest{City: "Goa"})

		require.NoError(t, err)
		assert.Equal(t, "Goa", out.City)
		assert.Equal(t, []model.FoodOutlet{}, out.Outlets)
	})

	t.Run("missing city", func(t *testing.T) {
		svc := NewTravelService(new(llmMocks.MockSearcher), perplexityCfg, nil)
		_, err := svc.FoodOptions(ctx, model.FoodOptionsRequest{City: " "})
		var ve *model.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}
