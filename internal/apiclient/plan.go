package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"itinera/internal/model"
)

// ErrInvalidItinerary is returned when the itinerary response has no days array.
var ErrInvalidItinerary = errors.New("invalid itinerary response received")

// RouteOptions is the travel lookup for one city pair. Exactly one of Options and Error is set.
type RouteOptions struct {
	Route   string                       `json:"route"`
	Options *model.TravelOptionsResponse `json:"options,omitempty"`
	Error   string                       `json:"error,omitempty"`
}

// FoodResult is the food lookup for the destination; a failed lookup keeps the city and an empty list.
type FoodResult struct {
	model.FoodOptionsResponse
	Error string `json:"error,omitempty"`
}

// TravelPlan is a complete plan assembled from several API calls.
type TravelPlan struct {
	Itinerary     *model.ItineraryResponse `json:"itinerary"`
	TravelOptions []RouteOptions           `json:"travelOptions"`
	FoodOptions   FoodResult               `json:"foodOptions"`
	GeneratedAt   time.Time                `json:"generatedAt"`
}

type Summary struct {
	ItineraryDays int `json:"itinerary_days"`
	TravelRoutes  int `json:"travel_routes"`
	FoodOutlets   int `json:"food_outlets"`
}

func (p *TravelPlan) Summary() Summary {
	s := Summary{TravelRoutes: len(p.TravelOptions), FoodOutlets: len(p.FoodOptions.Outlets)}
	if p.Itinerary != nil {
		s.ItineraryDays = p.Itinerary.NumDays
	}
	return s
}

// CityPairs lists the routes to look up: home to destination first, then every pair
// over home, destination and the itinerary's entity names in first-seen order.
func CityPairs(it *model.ItineraryResponse) [][2]string {
	var pairs [][2]string
	seenPair := map[[2]string]bool{}
	add := func(p [2]string) {
		if !seenPair[p] {
			seenPair[p] = true
			pairs = append(pairs, p)
		}
	}
	add([2]string{it.HomeCity, it.DestinationCity})

	var cities []string
	seenCity := map[string]bool{}
	addCity := func(name string) {
		if !seenCity[name] {
			seenCity[name] = true
			cities = append(cities, name)
		}
	}
	addCity(it.HomeCity)
	addCity(it.DestinationCity)
	for _, d := range it.Days {
		for _, e := range d.Entities {
			addCity(e.Name)
		}
	}

	for i := range cities {
		for j := i + 1; j < len(cities); j++ {
			add([2]string{cities[i], cities[j]})
		}
	}
	return pairs
}

// ExecuteTravelPlan generates an itinerary, then travel options for every city pair
// and food options for the destination. Route and food failures are recorded in the
// result; only an itinerary failure or cancellation aborts the plan.
func (c *Client) ExecuteTravelPlan(ctx context.Context, req model.ItineraryRequest) (*TravelPlan, error) {
	if req.NumDays == 0 {
		req.NumDays = model.DefaultNumDays
	}
	if req.Interests == nil {
		req.Interests = []string{}
	}

	c.log.Info("generating itinerary", zap.String("home_city", req.HomeCity), zap.String("destination_city", req.DestinationCity))
	it, err := c.Itinerary(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}
	if it.Days == nil {
		return nil, ErrInvalidItinerary
	}

	pairs := CityPairs(it)
	c.log.Info("getting travel options", zap.Int("city_pairs", len(pairs)))
	routes := make([]RouteOptions, 0, len(pairs))
	for _, p := range pairs {
		route := p[0] + " → " + p[1]
		opts, err := c.TravelOptions(ctx, model.TravelOptionsRequest{OriginCity: p[0], DestinationCity: p[1]})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("travel options failed", zap.String("route", route), zap.Error(err))
			routes = append(routes, RouteOptions{Route: route, Error: err.Error()})
			continue
		}
		routes = append(routes, RouteOptions{Route: route, Options: opts})

		if c.pause > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pause):
			}
		}
	}

	food := FoodResult{FoodOptionsResponse: model.FoodOptionsResponse{City: it.DestinationCity, Outlets: []model.FoodOutlet{}}}
	resp, err := c.FoodOptions(ctx, model.FoodOptionsRequest{City: it.DestinationCity, CuisinePreferences: []string{}})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.log.Warn("food options failed", zap.String("city", it.DestinationCity), zap.Error(err))
		food.Error = err.Error()
	} else {
		food.FoodOptionsResponse = *resp
	}

	return &TravelPlan{
		Itinerary:     it,
		TravelOptions: routes,
		FoodOptions:   food,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

// SavePlan writes plan as indented JSON to dir/travel-plan-<unix-ms>.json and returns the path.
func SavePlan(fs afero.Fs, dir string, plan *TravelPlan, now time.Time) (string, error) {
	b, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	name := filepath.Join(dir, fmt.Sprintf("travel-plan-%d.json", now.UnixMilli()))
	if err := afero.WriteFile(fs, name, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}
