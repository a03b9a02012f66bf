package handler

import (
	"github.com/gofiber/fiber/v2"

	"itinera/internal/model"
)

func (h *Handler) PlacesIndex(c *fiber.Ctx) error {
	p := apiPrefix + "/places"
	return c.JSON(fiber.Map{
		"message": "Itinera AI Places Processing",
		"endpoints": fiber.Map{
			"process_destinations": p + "/process",
			"task_status":          p + "/task-status/{task_id}",
		},
	})
}

// ProcessDestinations godoc
// @Summary Research destinations in the background
// @Description Returns immediately with a task to poll.
// @Tags places
// @Accept json
// @Produce json
// @Param destinations body []model.DestinationRequest true "Destinations"
// @Success 200 {object} model.Task
// @Failure 400 {object} errorPayload
// @Router /api/v1/itinera/places/process [post]
func (h *Handler) ProcessDestinations(c *fiber.Ctx) error {
	var destinations []model.DestinationRequest
	if err := decode(c, &destinations); err != nil {
		return invalidBody(c)
	}
	task, err := h.tasks.Process(c.UserContext(), destinations)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(task)
}

// TaskStatus godoc
// @Summary Poll a background research task
// @Tags places
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errorPayload
// @Router /api/v1/itinera/places/task-status/{id} [get]
func (h *Handler) TaskStatus(c *fiber.Ctx) error {
	task, err := h.tasks.Status(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(task)
}
