package api

import (
	"github.com/sproutworks/ecopods/internal/db"
	"github.com/sproutworks/ecopods/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.orderService == nil {
		handler.orderService = services.NewOrderService(handler.repositories.Orders)
	}
	if handler.paymentService == nil {
		handler.paymentService = services.NewPaymentService(-1)
	}
	if handler.pinLimiter == nil {
		handler.pinLimiter = newAttemptLimiter()
	}
}
