package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"itinera/internal/storage"
)

// Health godoc
// @Summary Liveness of the planner API
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/itinera/system/ [get]
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": serviceName})
}

// HealthDetailed godoc
// @Summary Health with version and endpoint index
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/itinera/system/detailed [get]
func (h *Handler) HealthDetailed(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": serviceName,
		"version": h.version,
		"endpoints": fiber.Map{
			"health":          apiPrefix + "/system/",
			"detailed_health": apiPrefix + "/system/detailed",
		},
	})
}

// Static streams a generated image from storage.
func (h *Handler) Static(c *fiber.Ctx) error {
	rc, info, err := h.store.Get(c.UserContext(), c.Params("*"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		h.log.Error("read static object", zap.String("key", c.Params("*")), zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	c.Set(fiber.HeaderContentType, info.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.SendStream(rc, int(info.Size))
}
