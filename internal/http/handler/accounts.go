package handler

import (
	"github.com/gofiber/fiber/v2"

	"itinera/internal/model"
)

func (h *Handler) AccountsIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Itinera AI User Management",
		"endpoints": fiber.Map{
			"users":   apiPrefix + "/accounts/users",
			"profile": apiPrefix + "/accounts/profile",
		},
	})
}

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.UserContext())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var u model.User
	if err := decode(c, &u); err != nil {
		return invalidBody(c)
	}
	rec, err := h.accounts.CreateUser(c.UserContext(), u)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    rec,
	})
}

func (h *Handler) Profile(c *fiber.Ctx) error {
	return c.JSON(h.accounts.Profile(c.UserContext()))
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var fields map[string]any
	if err := decode(c, &fields); err != nil {
		return invalidBody(c)
	}
	return c.JSON(fiber.Map{
		"message":      "Profile updated successfully",
		"updated_data": h.accounts.UpdateProfile(c.UserContext(), fields),
	})
}
