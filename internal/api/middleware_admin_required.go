package api

import "github.com/gofiber/fiber/v2"

// AdminRequired gates the admin surface on the unlock cookie. A locked
// request is forbidden, not challenged; the PIN flow lives on /unlock.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	if !handler.adminUnlocked(c) {
		return apiError(c, fiber.StatusForbidden, "admin locked")
	}
	return c.Next()
}
