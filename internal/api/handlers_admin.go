package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sproutworks/ecopods/internal/services"
)

type unlockInput struct {
	PIN string `json:"pin" form:"pin"`
}

type statusInput struct {
	Status string `json:"status" form:"status"`
}

func (handler *Handler) UnlockAdmin(c *fiber.Ctx) error {
	input := unlockInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.pinLimiter.tooManyRecent(limiterKey, now, pinAttemptLimit, pinAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	if err := services.VerifyAdminPIN(handler.adminPINHash, input.PIN); err != nil {
		handler.pinLimiter.addFailure(limiterKey, now, pinAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "wrong pin")
	}
	handler.pinLimiter.reset(limiterKey)

	if err := handler.setAdminCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock")
	}
	return c.JSON(fiber.Map{"unlocked": true})
}

// ExitAdmin re-locks the admin view and also clears the signed-in user,
// mirroring the single Exit action of the dashboard.
func (handler *Handler) ExitAdmin(c *fiber.Ctx) error {
	handler.clearCookie(c, adminCookieName)
	handler.clearCookie(c, sessionCookieName)
	return c.JSON(fiber.Map{"unlocked": false})
}

func (handler *Handler) AdminOrders(c *fiber.Ctx) error {
	seedFilter := c.Query("seed", services.FilterAll)
	statusFilter := c.Query("status", services.FilterAll)

	handler.ensureDependencies()
	orders, err := handler.repositories.Orders.ListFiltered(seedFilter, statusFilter)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load orders")
	}
	return c.JSON(buildOrderViews(orders))
}

// AdminMetrics always aggregates over every order, ignoring the list
// filters, and recomputes on each call.
func (handler *Handler) AdminMetrics(c *fiber.Ctx) error {
	handler.ensureDependencies()
	orders, err := handler.repositories.Orders.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load orders")
	}
	return c.JSON(services.AggregateTotals(orders))
}

func (handler *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	input := statusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	order, err := handler.orderService.Transition(c.Params("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return apiError(c, fiber.StatusNotFound, "order not found")
		case errors.Is(err, services.ErrUnknownStatus):
			return apiError(c, fiber.StatusBadRequest, "unknown order status")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update status")
		}
	}
	return c.JSON(buildOrderView(order))
}

func (handler *Handler) DeleteOrder(c *fiber.Ctx) error {
	confirmed := c.Query("confirm") == "true"

	handler.ensureDependencies()
	if err := handler.orderService.Delete(c.Params("id"), confirmed); err != nil {
		switch {
		case errors.Is(err, services.ErrDeleteNotConfirmed):
			return apiError(c, fiber.StatusBadRequest, "confirmation required")
		case errors.Is(err, services.ErrOrderNotFound):
			return apiError(c, fiber.StatusNotFound, "order not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to delete order")
		}
	}
	return c.JSON(fiber.Map{"deleted": true})
}
