package api

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/mesflow/internal/services"
)

func redirectOrJSON(c *fiber.Ctx, path string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", path)
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	if isHTMX(c) {
		return c.Status(status).SendString(fmt.Sprintf("<div class=\"status-error\">%s</div>", template.HTMLEscapeString(message)))
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func isHTMX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get("HX-Request"), "true")
}

func wantsAPIResponse(c *fiber.Ctx) bool {
	return acceptsJSON(c) || isHTMX(c)
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// mutationSucceeded reports a completed form action: a flash and a redirect
// for browsers, the created or changed record for JSON clients.
func (handler *Handler) mutationSucceeded(c *fiber.Ctx, path string, message string, record any) error {
	if acceptsJSON(c) && record != nil {
		return c.JSON(record)
	}
	if !acceptsJSON(c) {
		handler.setFlashCookie(c, FlashPayload{Success: message})
	}
	return redirectOrJSON(c, path)
}

// mutationFailed maps a service error onto a response. Unknown records render
// the 404 page; validation problems go back to path with the message flashed.
func (handler *Handler) mutationFailed(c *fiber.Ctx, path string, err error) error {
	status, message := classifyServiceError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}
	if status == fiber.StatusNotFound {
		return handler.NotFound(c)
	}
	if wantsAPIResponse(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message})
	return c.Redirect(path, fiber.StatusSeeOther)
}

func (handler *Handler) invalidForm(c *fiber.Ctx, path string) error {
	return handler.mutationFailed(c, path, fmt.Errorf("%w: malformed form", services.ErrInvalidInput))
}

func classifyServiceError(err error) (int, string) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound, "not found"
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Error()
	case errors.Is(err, services.ErrInvalidComponentList):
		return fiber.StatusBadRequest, "Components must be a comma separated list of stock ids"
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid input"
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict, "Email already registered. Please login."
	case errors.Is(err, services.ErrUsernameTaken):
		return fiber.StatusConflict, "Username already taken"
	default:
		return fiber.StatusInternalServerError, "Something went wrong"
	}
}
