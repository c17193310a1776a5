package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/terraincognita07/mesflow/internal/services"
)

type loginInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":      "Login | MESflow",
		"Flash":      flash,
		"LoginEmail": flash.LoginEmail,
	})
}

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "signup", fiber.Map{
		"Title": "Sign up | MESflow",
		"Roles": models.Roles,
	})
}

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := services.SignupInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/signup")
	}

	user, err := handler.authService.Register(input)
	if errors.Is(err, services.ErrEmailTaken) {
		if wantsAPIResponse(c) {
			return apiError(c, fiber.StatusConflict, "Email already registered. Please login.")
		}
		handler.setFlashCookie(c, FlashPayload{
			Error:      "Email already registered. Please login.",
			LoginEmail: input.Email,
		})
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err != nil {
		return handler.mutationFailed(c, "/signup", err)
	}

	log.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": user.ID})
	}
	handler.setFlashCookie(c, FlashPayload{Success: "User registered successfully!", LoginEmail: user.Email})
	return redirectOrJSON(c, "/login")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.loginFailed(c, fiber.StatusBadRequest, "Invalid input", "")
	}
	email := services.NormalizeEmail(input.Email)

	limiterKey := loginLimiterKey(c, email)
	now := handler.now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return handler.loginFailed(c, fiber.StatusTooManyRequests, "Too many login attempts. Try again later.", email)
	}

	user, err := handler.authService.Authenticate(email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return handler.loginFailed(c, fiber.StatusUnauthorized, "Invalid credentials", email)
	}
	if err != nil {
		log.Error().Err(err).Msg("authenticate user")
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	if user.MustChangePassword {
		return redirectOrJSON(c, "/profile")
	}
	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) loginFailed(c *fiber.Ctx, status int, message string, email string) error {
	if wantsAPIResponse(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{Error: message, LoginEmail: email})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return redirectOrJSON(c, "/login")
}
