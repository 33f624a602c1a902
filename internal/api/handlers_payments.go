package api

import "github.com/gofiber/fiber/v2"

// DemoPayment acknowledges a mock charge after a cosmetic delay. It never
// declines; the receipt marks the draft as payable.
func (handler *Handler) DemoPayment(c *fiber.Ctx) error {
	handler.ensureDependencies()
	receipt, err := handler.paymentService.Charge(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "payment interrupted")
	}
	return c.JSON(receipt)
}
