package handler

import (
	"github.com/gofiber/fiber/v2"

	"itinera/internal/model"
)

func (h *Handler) PlannerIndex(c *fiber.Ctx) error {
	p := apiPrefix + "/planner"
	return c.JSON(fiber.Map{
		"message": "Itinera AI Planning Engine",
		"endpoints": fiber.Map{
			"plans":            p + "/plans",
			"destinations":     p + "/destinations",
			"itinerary":        p + "/itinerary",
			"itinerary_places": p + "/itinerary/places",
			"options":          p + "/options",
			"food":             p + "/food",
			"chat":             p + "/chat",
		},
	})
}

func (h *Handler) ListPlans(c *fiber.Ctx) error {
	plans, err := h.planner.ListPlans(c.UserContext())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"plans": plans})
}

// CreatePlan godoc
// @Summary Save a travel plan
// @Tags planner
// @Accept json
// @Produce json
// @Param plan body model.TravelPlan true "Plan"
// @Success 201 {object} map[string]any
// @Failure 422 {object} errorPayload
// @Router /api/v1/itinera/planner/plans [post]
func (h *Handler) CreatePlan(c *fiber.Ctx) error {
	var plan model.TravelPlan
	if err := decode(c, &plan); err != nil {
		return invalidBody(c)
	}
	rec, err := h.planner.CreatePlan(c.UserContext(), plan)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Travel plan created successfully",
		"plan":    rec,
	})
}

func (h *Handler) GetPlan(c *fiber.Ctx) error {
	rec, err := h.planner.GetPlan(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(rec)
}

func (h *Handler) ListDestinations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"destinations": h.planner.PopularDestinations()})
}

func (h *Handler) AddDestination(c *fiber.Ctx) error {
	var d model.Destination
	if err := decode(c, &d); err != nil {
		return invalidBody(c)
	}
	out, err := h.planner.AddDestination(d)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Destination added successfully",
		"destination": out,
	})
}

// Itinerary godoc
// @Summary Generate a day-by-day itinerary
// @Description Generation failures return the request echoed with no days.
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.ItineraryRequest true "Trip"
// @Success 200 {object} model.ItineraryResponse
// @Failure 422 {object} errorPayload
// @Router /api/v1/itinera/planner/itinerary [post]
func (h *Handler) Itinerary(c *fiber.Ctx) error {
	var req model.ItineraryRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.planner.GenerateItinerary(c.UserContext(), req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(out)
}

// ItineraryPlaces godoc
// @Summary Generate place cards for a destination
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.ItineraryPlacesRequest true "Destination"
// @Success 200 {object} model.ItineraryPlacesResponse
// @Router /api/v1/itinera/planner/itinerary/places [post]
func (h *Handler) ItineraryPlaces(c *fiber.Ctx) error {
	var req model.ItineraryPlacesRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.planner.GeneratePlaces(c.UserContext(), req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(out)
}

// TravelOptions godoc
// @Summary Web-grounded travel options between two cities
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.TravelOptionsRequest true "Route"
// @Success 200 {object} model.TravelOptionsResponse
// @Failure 503 {object} errorPayload
// @Router /api/v1/itinera/planner/options [post]
func (h *Handler) TravelOptions(c *fiber.Ctx) error {
	var req model.TravelOptionsRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.travel.TravelOptions(c.UserContext(), req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(out)
}

// FoodOptions godoc
// @Summary Web-grounded food outlets in a city
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.FoodOptionsRequest true "City"
// @Success 200 {object} model.FoodOptionsResponse
// @Failure 503 {object} errorPayload
// @Router /api/v1/itinera/planner/food [post]
func (h *Handler) FoodOptions(c *fiber.Ctx) error {
	var req model.FoodOptionsRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.travel.FoodOptions(c.UserContext(), req)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(out)
}

// Chat godoc
// @Summary Plan a trip from a free-text message
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Message"
// @Success 200 {object} model.ChatResponse
// @Router /api/v1/itinera/planner/chat [post]
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req model.ChatRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.planner.Chat(c.UserContext(), req.Message)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(out)
}
