package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/llm"
	"itinera/internal/model"
	"itinera/internal/prompt"
)

// canonicalModes is the display order of known transport modes; others follow alphabetically.
var canonicalModes = []string{"train", "bus", "car_taxi", "car_transport", "part_load_transport", "flight"}

// TravelService answers web-grounded questions about getting to and eating in a city.
type TravelService interface {
	TravelOptions(ctx context.Context, req model.TravelOptionsRequest) (*model.TravelOptionsResponse, error)
	FoodOptions(ctx context.Context, req model.FoodOptionsRequest) (*model.FoodOptionsResponse, error)
}

type travelService struct {
	search llm.Searcher
	cfg    config.PerplexityConfig
	log    *zap.Logger
}

func NewTravelService(search llm.Searcher, cfg config.PerplexityConfig, log *zap.Logger) TravelService {
	if log == nil {
		log = zap.NewNop()
	}
	return &travelService{search: search, cfg: cfg, log: log}
}

func (s *travelService) complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	resp, err := s.search.Complete(ctx, req)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", err
		}
		s.log.Warn("search completion failed, using fallback", zap.Error(err))
		return "", nil
	}
	return resp.Text(), nil
}

// travelPayload accepts both the mode map the model is asked for and an already-normalized response.
type travelPayload struct {
	Origin          string                          `json:"origin"`
	Destination     string                          `json:"destination"`
	OriginCity      string                          `json:"origin_city"`
	DestinationCity string                          `json:"destination_city"`
	TravelOptions   map[string][]model.TravelOption `json:"travel_options"`
	Modes           []model.TravelMode              `json:"modes"`
}

func (s *travelService) TravelOptions(ctx context.Context, req model.TravelOptionsRequest) (*model.TravelOptionsResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, llm.CompletionRequest{
		System:        prompt.TravelOptionsSystem,
		Prompt:        prompt.TravelOptions(req),
		MaxTokens:     s.cfg.MaxTokens,
		RecencyFilter: deref(req.RecencyFilter),
	})
	if err != nil {
		return nil, err
	}

	var p travelPayload
	if text == "" || llm.ExtractJSON(text, &p) != nil {
		s.log.Warn("travel options response not decodable, using fallback",
			zap.String("origin_city", req.OriginCity),
			zap.String("destination_city", req.DestinationCity))
		p = travelPayload{}
	}

	out := &model.TravelOptionsResponse{
		OriginCity:      firstNonEmpty(p.Origin, p.OriginCity, req.OriginCity),
		DestinationCity: firstNonEmpty(p.Destination, p.DestinationCity, req.DestinationCity),
		Modes:           p.Modes,
	}
	if p.TravelOptions != nil {
		out.Modes = modesFromMap(p.TravelOptions)
	}
	out.Sanitize()
	return out, nil
}

// modesFromMap keeps modes that have options, canonical modes first.
func modesFromMap(m map[string][]model.TravelOption) []model.TravelMode {
	modes := []model.TravelMode{}
	seen := map[string]bool{}
	for _, name := range canonicalModes {
		seen[name] = true
		if opts := m[name]; len(opts) > 0 {
			modes = append(modes, model.TravelMode{Mode: name, Options: opts})
		}
	}
	var rest []string
	for name, opts := range m {
		if !seen[name] && len(opts) > 0 {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		modes = append(modes, model.TravelMode{Mode: name, Options: m[name]})
	}
	return modes
}

type foodPayload struct {
	City    string             `json:"city"`
	Outlets []model.FoodOutlet `json:"outlets"`
}

func (s *travelService) FoodOptions(ctx context.Context, req model.FoodOptionsRequest) (*model.FoodOptionsResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, llm.CompletionRequest{
		System:        prompt.FoodOptionsSystem,
		Prompt:        prompt.FoodOptions(req),
		MaxTokens:     s.cfg.FoodMaxTokens,
		RecencyFilter: deref(req.RecencyFilter),
	})
	if err != nil {
		return nil, err
	}

	var p foodPayload
	if text == "" || llm.ExtractJSON(text, &p) != nil {
		s.log.Warn("food options response not decodable, using fallback", zap.String("city", req.City))
		p = foodPayload{}
	}
	out := &model.FoodOptionsResponse{City: firstNonEmpty(p.City, req.City), Outlets: p.Outlets}
	out.Sanitize()
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
