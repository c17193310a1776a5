package api

import (
	"github.com/gofiber/fiber/v2"
)

type changePasswordInput struct {
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"id":                   user.ID,
			"username":             user.Username,
			"email":                user.Email,
			"role":                 user.Role,
			"must_change_password": user.MustChangePassword,
		})
	}
	return handler.render(c, "profile", fiber.Map{
		"Title": "Profile | MESflow",
		"User":  user,
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/profile")
	}
	if input.NewPassword != input.ConfirmPassword {
		if wantsAPIResponse(c) {
			return apiError(c, fiber.StatusBadRequest, "Passwords do not match")
		}
		handler.setFlashCookie(c, FlashPayload{Error: "Passwords do not match"})
		return c.Redirect("/profile", fiber.StatusSeeOther)
	}
	if err := handler.authService.ChangePassword(user.ID, input.NewPassword); err != nil {
		return handler.mutationFailed(c, "/profile", err)
	}
	return handler.mutationSucceeded(c, "/profile", "Password updated!", nil)
}
