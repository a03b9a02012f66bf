package handler

import (
	"github.com/gofiber/fiber/v2"

	"itinera/internal/booking"
)

// Quote godoc
// @Summary Price the selected stays and travel options
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body booking.QuoteRequest true "Selections"
// @Success 200 {object} booking.Quote
// @Router /api/v1/itinera/reservations/quote [post]
func (h *Handler) Quote(c *fiber.Ctx) error {
	var req booking.QuoteRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	return c.JSON(booking.Calculate(req))
}
