package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/model"
)

// fakeAPI serves the short /travel routes with canned responses and records calls.
type fakeAPI struct {
	mu        sync.Mutex
	routes    []model.TravelOptionsRequest
	failRoute string
	failFood  bool
	itinerary model.ItineraryResponse
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/detailed", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "healthy"})
	})
	mux.HandleFunc("/travel/itinerary", func(w http.ResponseWriter, r *http.Request) {
		var req model.ItineraryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(f.itinerary)
	})
	mux.HandleFunc("/travel/options", func(w http.ResponseWriter, r *http.Request) {
		var req model.TravelOptionsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.routes = append(f.routes, req)
		f.mu.Unlock()
		if req.DestinationCity == f.failRoute {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"request_id":"r1","error":{"code":"SERVICE_UNAVAILABLE","message":"AI provider is not configured"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.TravelOptionsResponse{OriginCity: req.OriginCity, DestinationCity: req.DestinationCity, Modes: []model.TravelMode{}})
	})
	mux.HandleFunc("/travel/food", func(w http.ResponseWriter, r *http.Request) {
		if f.failFood {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(model.FoodOptionsResponse{City: "Goa", Outlets: []model.FoodOutlet{{Name: "Britto's"}}})
	})
	return mux
}

func goaItinerary() model.ItineraryResponse {
	return model.ItineraryResponse{
		HomeCity: "Mumbai", DestinationCity: "Goa", NumDays: 2,
		Days: []model.ItineraryDay{
			{Day: 1, Entities: []model.ItineraryEntity{{Name: "Panaji"}, {Name: "Goa"}}},
			{Day: 2, Entities: []model.ItineraryEntity{{Name: "Panaji"}}},
		},
		OverallTips: []string{},
	}
}

func TestCityPairs(t *testing.T) {
	it := goaItinerary()
	assert.Equal(t, [][2]string{
		{"Mumbai", "Goa"},
		{"Mumbai", "Panaji"},
		{"Goa", "Panaji"},
	}, CityPairs(&it))
}

func TestExecuteTravelPlan(t *testing.T) {
	api := &fakeAPI{itinerary: goaItinerary(), failRoute: "Panaji"}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	c := New(srv.URL+"/", WithRoutePause(0))
	plan, err := c.ExecuteTravelPlan(context.Background(), model.ItineraryRequest{HomeCity: "Mumbai", DestinationCity: "Goa"})
	require.NoError(t, err)

	require.Len(t, plan.TravelOptions, 3)
	assert.Equal(t, "Mumbai → Goa", plan.TravelOptions[0].Route)
	assert.NotNil(t, plan.TravelOptions[0].Options)
	assert.Empty(t, plan.TravelOptions[0].Error)
	assert.Nil(t, plan.TravelOptions[1].Options)
	assert.Contains(t, plan.TravelOptions[1].Error, "SERVICE_UNAVAILABLE")

	assert.Equal(t, "Britto's", plan.FoodOptions.Outlets[0].Name)
	assert.Equal(t, Summary{ItineraryDays: 2, TravelRoutes: 3, FoodOutlets: 1}, plan.Summary())
	assert.Len(t, api.routes, 3)
}

func TestExecuteTravelPlan_FoodFailureKeepsCity(t *testing.T) {
	api := &fakeAPI{itinerary: goaItinerary(), failFood: true}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	plan, err := New(srv.URL, WithRoutePause(0)).ExecuteTravelPlan(context.Background(), model.ItineraryRequest{HomeCity: "Mumbai", DestinationCity: "Goa"})
	require.NoError(t, err)

	assert.Equal(t, "Goa", plan.FoodOptions.City)
	assert.Equal(t, []model.FoodOutlet{}, plan.FoodOptions.Outlets)
	assert.Contains(t, plan.FoodOptions.Error, "upstream exploded")

	b, err := json.Marshal(plan.FoodOptions)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"city":"Goa"`)
	assert.Contains(t, string(b), `"outlets":[]`)
}

func TestExecuteTravelPlan_InvalidItinerary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"home_city":"Mumbai"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ExecuteTravelPlan(context.Background(), model.ItineraryRequest{HomeCity: "Mumbai", DestinationCity: "Goa"})
	assert.ErrorIs(t, err, ErrInvalidItinerary)
}

func TestExecuteTravelPlan_CancelledDuringPause(t *testing.T) {
	api := &fakeAPI{itinerary: goaItinerary()}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL, WithRoutePause(time.Minute)).ExecuteTravelPlan(ctx, model.ItineraryRequest{HomeCity: "Mumbai", DestinationCity: "Goa"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, api.routes, 1)
}

func TestClient_ErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "itinerary") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"request_id":"abc","error":{"code":"VALIDATION_ERROR","message":"num_days: must be between 1 and 14"}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := New(srv.URL)

	_, err := c.PlannerItinerary(context.Background(), model.ItineraryRequest{NumDays: 40})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Equal(t, "abc", apiErr.RequestID)

	_, err = c.Health(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestSavePlan(t *testing.T) {
	fs := afero.NewMemMapFs()
	it := goaItinerary()
	plan := &TravelPlan{Itinerary: &it, TravelOptions: []RouteOptions{}}

	name, err := SavePlan(fs, "out", plan, time.UnixMilli(1700000000123))
	require.NoError(t, err)
	assert.Equal(t, "out/travel-plan-1700000000123.json", name)

	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	var back TravelPlan
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "Goa", back.Itinerary.DestinationCity)
}
