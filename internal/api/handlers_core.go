package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) || wantsAPIResponse(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	user, ok := currentUser(c)
	if !ok {
		user = handler.optionalAuthenticatedUser(c)
	}
	primaryPath := "/login"
	if user != nil {
		primaryPath = "/dashboard"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":       "Page Not Found | MESflow",
		"CurrentUser": user,
		"PrimaryPath": primaryPath,
	})
}
