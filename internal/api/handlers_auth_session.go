package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sproutworks/ecopods/internal/services"
)

type signInInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// SignIn is the whole of authentication: hand over contact details once
// and get a session. A known email resumes its profile and points.
func (handler *Handler) SignIn(c *fiber.Ctx) error {
	input := signInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.SignIn(services.SignInInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailInvalid) {
			return apiError(c, fiber.StatusBadRequest, "email required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	if err := handler.setSessionCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(user)
}

func (handler *Handler) SignOut(c *fiber.Ctx) error {
	handler.clearCookie(c, sessionCookieName)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Profile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
