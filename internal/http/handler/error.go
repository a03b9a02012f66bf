package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"itinera/internal/http/middleware"
	"itinera/internal/llm"
	"itinera/internal/model"
	"itinera/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the standard error body. message must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// serviceError maps service and model errors to HTTP responses.
// Unknown errors are logged and reported as 500 without their text.
func (h *Handler) serviceError(c *fiber.Ctx, err error) error {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", ve.Error())
	case errors.Is(err, llm.ErrNotConfigured):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "AI provider is not configured")
	case errors.Is(err, service.ErrPlanNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "travel plan not found")
	case errors.Is(err, service.ErrTaskNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "task not found")
	case errors.Is(err, service.ErrNoDestinations),
		errors.Is(err, service.ErrMessageMissing),
		errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	}

	h.log.Error("request failed",
		zap.String("request_id", middleware.RequestIDFrom(c)),
		zap.String("path", c.Path()),
		zap.Error(err))
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
