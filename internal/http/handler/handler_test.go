package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"itinera/internal/http/middleware"
	"itinera/internal/llm"
	"itinera/internal/model"
	"itinera/internal/service"
	serviceMocks "itinera/internal/service/mocks"
	"itinera/internal/storage"
)

type testDeps struct {
	planner  *serviceMocks.MockPlannerService
	travel   *serviceMocks.MockTravelService
	tasks    *serviceMocks.MockDestinationTaskService
	accounts *serviceMocks.MockAccountService
	store    storage.Storage
}

func setup(t *testing.T) (*fiber.App, *testDeps) {
	t.Helper()
	d := &testDeps{
		planner:  new(serviceMocks.MockPlannerService),
		travel:   new(serviceMocks.MockTravelService),
		tasks:    new(serviceMocks.MockDestinationTaskService),
		accounts: new(serviceMocks.MockAccountService),
		store:    storage.NewFS(afero.NewMemMapFs()),
	}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, Deps{
		Planner:  d.planner,
		Travel:   d.travel,
		Tasks:    d.tasks,
		Accounts: d.accounts,
		Store:    d.store,
		Metrics:  prometheus.NewRegistry(),
		Version:  "1.2.3",
	})
	return app, d
}

func do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	app, _ := setup(t)

	resp := do(t, app, http.MethodGet, "/api/v1/itinera/system/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Itinera AI", body["service"])

	for _, path := range []string{"/api/v1/itinera/system/detailed", "/health/detailed"} {
		resp := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, "1.2.3", body["version"], path)
		assert.Contains(t, body, "endpoints", path)
	}

	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/healthz", "").StatusCode)
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/metrics", "").StatusCode)
}

func TestIndexes(t *testing.T) {
	app, _ := setup(t)
	for _, path := range []string{"/api/v1/itinera/planner/", "/api/v1/itinera/accounts/", "/api/v1/itinera/places/"} {
		resp := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		body := decodeBody[map[string]any](t, resp)
		assert.NotEmpty(t, body["message"], path)
	}
}

func TestItinerary(t *testing.T) {
	app, d := setup(t)
	want := &model.ItineraryResponse{HomeCity: "Mumbai", DestinationCity: "Goa", NumDays: 3, Days: []model.ItineraryDay{}, OverallTips: []string{}}

	t.Run("success on both paths", func(t *testing.T) {
		d.planner.On("GenerateItinerary", mock.Anything, model.ItineraryRequest{HomeCity: "Mumbai", DestinationCity: "Goa", NumDays: 3}).
			Return(want, nil).Twice()

		for _, path := range []string{"/api/v1/itinera/planner/itinerary", "/travel/itinerary"} {
			resp := do(t, app, http.MethodPost, path, `{"home_city":"Mumbai","destination_city":"Goa","num_days":3}`)
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
			got := decodeBody[model.ItineraryResponse](t, resp)
			assert.Equal(t, "Goa", got.DestinationCity)
		}
		d.planner.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		d.planner.On("GenerateItinerary", mock.Anything, mock.MatchedBy(func(r model.ItineraryRequest) bool { return r.NumDays == 99 })).
			Return(nil, &model.ValidationError{Field: "num_days", Message: "must be between 1 and 14"}).Once()

		resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/itinerary", `{"home_city":"Mumbai","destination_city":"Goa","num_days":99}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "num_days: must be between 1 and 14", body.Error.Message)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("invalid body", func(t *testing.T) {
		resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/itinerary", `{"home_city":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})
}

func TestItineraryPlaces(t *testing.T) {
	app, d := setup(t)
	d.planner.On("GeneratePlaces", mock.Anything, model.ItineraryPlacesRequest{DestinationCity: "Jaipur", MaxPlaces: 2}).
		Return(&model.ItineraryPlacesResponse{DestinationCity: "Jaipur", Places: []model.ItineraryPlaceCard{{PlaceName: "Amber Fort"}}}, nil)

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/itinerary/places", `{"destination_city":"Jaipur","max_places":2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[model.ItineraryPlacesResponse](t, resp)
	require.Len(t, got.Places, 1)
	assert.Equal(t, "Amber Fort", got.Places[0].PlaceName)
}

func TestTravelOptions(t *testing.T) {
	app, d := setup(t)

	t.Run("success on alias", func(t *testing.T) {
		d.travel.On("TravelOptions", mock.Anything, model.TravelOptionsRequest{OriginCity: "Pune", DestinationCity: "Goa"}).
			Return(&model.TravelOptionsResponse{OriginCity: "Pune", DestinationCity: "Goa", Modes: []model.TravelMode{}}, nil).Once()

		resp := do(t, app, http.MethodPost, "/travel/options", `{"origin_city":"Pune","destination_city":"Goa"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("provider not configured", func(t *testing.T) {
		d.travel.On("TravelOptions", mock.Anything, mock.Anything).Return(nil, llm.ErrNotConfigured).Once()

		resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/options", `{"origin_city":"Pune","destination_city":"Goa"}`)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestFoodOptions(t *testing.T) {
	app, d := setup(t)
	price := "$$"
	d.travel.On("FoodOptions", mock.Anything, model.FoodOptionsRequest{City: "Goa", PriceLevel: &price}).
		Return(&model.FoodOptionsResponse{City: "Goa", Outlets: []model.FoodOutlet{{Name: "Ritz Classic"}}}, nil)

	for _, path := range []string{"/api/v1/itinera/planner/food", "/travel/food"} {
		resp := do(t, app, http.MethodPost, path, `{"city":"Goa","price_level":"$$"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		got := decodeBody[model.FoodOptionsResponse](t, resp)
		assert.Equal(t, "Ritz Classic", got.Outlets[0].Name, path)
	}
}

func TestChat(t *testing.T) {
	app, d := setup(t)
	d.planner.On("Chat", mock.Anything, "trip to Goa").
		Return(&model.ChatResponse{Query: model.ItineraryRequest{DestinationCity: "Goa"}, Itinerary: &model.ItineraryResponse{DestinationCity: "Goa"}}, nil)
	d.planner.On("Chat", mock.Anything, "").Return(nil, service.ErrMessageMissing)

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/chat", `{"message":"trip to Goa"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[model.ChatResponse](t, resp)
	assert.Equal(t, "Goa", got.Query.DestinationCity)

	resp = do(t, app, http.MethodPost, "/api/v1/itinera/planner/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[errorPayload](t, resp)
	assert.Equal(t, "message is required", body.Error.Message)
}

func TestPlans(t *testing.T) {
	app, d := setup(t)
	rec := &model.TravelPlanRecord{ID: "plan_1", Destination: "Kyoto", Duration: 5, Status: "created"}

	d.planner.On("CreatePlan", mock.Anything, model.TravelPlan{Destination: "Kyoto", Duration: 5}).Return(rec, nil)
	d.planner.On("GetPlan", mock.Anything, "plan_1").Return(rec, nil)
	d.planner.On("GetPlan", mock.Anything, "plan_9").Return(nil, service.ErrPlanNotFound)
	d.planner.On("ListPlans", mock.Anything).Return([]model.TravelPlanRecord{*rec}, nil)

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/planner/plans", `{"destination":"Kyoto","duration":5}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Travel plan created successfully", created["message"])
	assert.Equal(t, "plan_1", created["plan"].(map[string]any)["id"])

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/planner/plans/plan_1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kyoto", decodeBody[model.TravelPlanRecord](t, resp).Destination)

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/planner/plans/plan_9", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "travel plan not found", decodeBody[errorPayload](t, resp).Error.Message)

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/planner/plans", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[map[string][]model.TravelPlanRecord](t, resp)
	assert.Len(t, list["plans"], 1)
}

func TestPlans_InternalErrorIsHidden(t *testing.T) {
	app, d := setup(t)
	d.planner.On("ListPlans", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	resp := do(t, app, http.MethodGet, "/api/v1/itinera/planner/plans", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody[errorPayload](t, resp)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection refused")
}

func TestDestinations(t *testing.T) {
	app, d := setup(t)
	lisbon := model.Destination{Name: "Lisbon", Country: "Portugal"}
	d.planner.On("PopularDestinations").Return([]model.Destination{{Name: "Paris", Country: "France"}})
	d.planner.On("AddDestination", lisbon).Return(lisbon, nil)

	resp := do(t, app, http.MethodGet, "/api/v1/itinera/planner/destinations", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[map[string][]model.Destination](t, resp)["destinations"], 1)

	resp = do(t, app, http.MethodPost, "/api/v1/itinera/planner/destinations", `{"name":"Lisbon","country":"Portugal"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAccounts(t *testing.T) {
	app, d := setup(t)
	d.accounts.On("CreateUser", mock.Anything, model.User{Name: "Asha", Email: "asha@example.com"}).
		Return(&model.UserRecord{ID: "user_1", Name: "Asha"}, nil)
	d.accounts.On("ListUsers", mock.Anything).Return([]model.UserRecord{{ID: "user_1"}}, nil)
	d.accounts.On("Profile", mock.Anything).Return(model.Profile{ID: "user_1", Name: "John Doe"})
	d.accounts.On("UpdateProfile", mock.Anything, map[string]any{"name": "Jane"}).Return(map[string]any{"name": "Jane"})

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/accounts/users", `{"name":"Asha","email":"asha@example.com"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully", decodeBody[map[string]any](t, resp)["message"])

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/accounts/users", "")
	assert.Len(t, decodeBody[map[string][]model.UserRecord](t, resp)["users"], 1)

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/accounts/profile", "")
	assert.Equal(t, "John Doe", decodeBody[model.Profile](t, resp).Name)

	resp = do(t, app, http.MethodPut, "/api/v1/itinera/accounts/profile", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[map[string]any](t, resp)
	assert.Equal(t, map[string]any{"name": "Jane"}, updated["updated_data"])
}

func TestProcessDestinations(t *testing.T) {
	app, d := setup(t)
	task := &model.Task{TaskID: "t-1", Status: model.StatusProcessing, Destinations: []model.DestinationResult{{Place: "Goa"}}}
	d.tasks.On("Process", mock.Anything, []model.DestinationRequest{{Place: "Goa", Days: 2, Budget: 15000}}).Return(task, nil)
	d.tasks.On("Process", mock.Anything, []model.DestinationRequest{}).Return(nil, service.ErrNoDestinations)
	d.tasks.On("Status", mock.Anything, "t-1").Return(task, nil)
	d.tasks.On("Status", mock.Anything, "nope").Return(nil, service.ErrTaskNotFound)

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/places/process", `[{"place":"Goa","days":2,"budget":15000}]`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "t-1", decodeBody[model.Task](t, resp).TaskID)

	resp = do(t, app, http.MethodPost, "/api/v1/itinera/places/process", `[]`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no destinations provided", decodeBody[errorPayload](t, resp).Error.Message)

	resp = do(t, app, http.MethodPost, "/api/v1/itinera/places/process", `{"place":"Goa"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/places/task-status/t-1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/v1/itinera/places/task-status/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuote(t *testing.T) {
	app, _ := setup(t)
	body := `{
		"accommodations": {"budget": {"day1": {"stays": [{"name": "Zostel \"backpacker hostel\""}]}}},
		"travel_options": {"outbound": {"options": [{"name": "Train", "segments": [{"cost": 800}]}]}, "return": {"options": [{"name": "Bus"}]}},
		"selected_accommodations": ["budget-day1-0"],
		"selected_travel_options": ["0", "1"]
	}`

	resp := do(t, app, http.MethodPost, "/api/v1/itinera/reservations/quote", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[map[string]any](t, resp)
	assert.Equal(t, 4300.0, got["total"])
	assert.Equal(t, "₹4,300", got["formatted"])
	assert.Len(t, got["items"], 3)
}

func TestStatic(t *testing.T) {
	app, d := setup(t)
	_, err := d.store.Put(context.Background(), "itineraries/goa/baga_0_0.png", bytes.NewReader([]byte("img")), storage.PutObjectOptions{Size: 3, ContentType: "image/png"})
	require.NoError(t, err)

	resp := do(t, app, http.MethodGet, "/static/itineraries/goa/baga_0_0.png", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "img", string(b))

	resp = do(t, app, http.MethodGet, "/static/itineraries/goa/missing.png", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := setup(t)
	resp := do(t, app, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody[errorPayload](t, resp).Error.Code)
}
