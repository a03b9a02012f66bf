// Package handler exposes the planner services over HTTP.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"itinera/internal/http/middleware"
	"itinera/internal/service"
	"itinera/internal/storage"
)

const (
	apiPrefix   = "/api/v1/itinera"
	serviceName = "Itinera AI"
)

// Deps are the collaborators the HTTP layer needs. Store and Metrics are optional.
type Deps struct {
	Planner  service.PlannerService
	Travel   service.TravelService
	Tasks    service.DestinationTaskService
	Accounts service.AccountService
	Store    storage.Storage
	Metrics  prometheus.Gatherer
	Version  string
	Log      *zap.Logger
}

// Handler holds the route handlers.
type Handler struct {
	planner  service.PlannerService
	travel   service.TravelService
	tasks    service.DestinationTaskService
	accounts service.AccountService
	store    storage.Storage
	version  string
	log      *zap.Logger
}

func New(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		planner:  d.Planner,
		travel:   d.Travel,
		tasks:    d.Tasks,
		accounts: d.Accounts,
		store:    d.Store,
		version:  d.Version,
		log:      log,
	}
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	h := New(d)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if d.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}
	if h.store != nil {
		app.Get(service.StaticPrefix+"*", h.Static)
	}

	system := app.Group(apiPrefix + "/system")
	system.Get("/", h.Health)
	system.Get("/detailed", h.HealthDetailed)

	planner := app.Group(apiPrefix + "/planner")
	planner.Get("/", h.PlannerIndex)
	planner.Get("/plans", h.ListPlans)
	planner.Post("/plans", h.CreatePlan)
	planner.Get("/plans/:id", h.GetPlan)
	planner.Get("/destinations", h.ListDestinations)
	planner.Post("/destinations", h.AddDestination)
	planner.Post("/itinerary", h.Itinerary)
	planner.Post("/itinerary/places", h.ItineraryPlaces)
	planner.Post("/options", h.TravelOptions)
	planner.Post("/food", h.FoodOptions)
	planner.Post("/chat", h.Chat)

	accounts := app.Group(apiPrefix + "/accounts")
	accounts.Get("/", h.AccountsIndex)
	accounts.Get("/users", h.ListUsers)
	accounts.Post("/users", h.CreateUser)
	accounts.Get("/profile", h.Profile)
	accounts.Put("/profile", h.UpdateProfile)

	places := app.Group(apiPrefix + "/places")
	places.Get("/", h.PlacesIndex)
	places.Post("/process", h.ProcessDestinations)
	places.Get("/task-status/:id", h.TaskStatus)

	app.Post(apiPrefix+"/reservations/quote", h.Quote)

	// Short paths used by the companion API client.
	app.Get("/health/detailed", h.HealthDetailed)
	app.Post("/travel/itinerary", h.Itinerary)
	app.Post("/travel/options", h.TravelOptions)
	app.Post("/travel/food", h.FoodOptions)
}

// decode unmarshals the request body with the app's JSON decoder, ignoring Content-Type.
func decode(c *fiber.Ctx, v any) error {
	return c.App().Config().JSONDecoder(c.Body(), v)
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
}
