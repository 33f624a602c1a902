package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signin", handler.SignIn)
	auth.Post("/signout", handler.AuthRequired, handler.SignOut)

	api.Get("/profile", handler.AuthRequired, handler.Profile)

	api.Post("/payments/demo", handler.DemoPayment)

	orders := api.Group("/orders")
	orders.Post("/quote", handler.QuoteOrder)
	orders.Post("", handler.AuthRequired, handler.CreateOrder)
	orders.Get("", handler.AuthRequired, handler.ListMyOrders)
	orders.Get("/:id", handler.AuthRequired, handler.GetOrder)

	admin := api.Group("/admin")
	admin.Post("/unlock", handler.UnlockAdmin)
	admin.Post("/exit", handler.ExitAdmin)
	admin.Get("/orders", handler.AdminRequired, handler.AdminOrders)
	admin.Get("/metrics", handler.AdminRequired, handler.AdminMetrics)
	admin.Put("/orders/:id/status", handler.AdminRequired, handler.UpdateOrderStatus)
	admin.Delete("/orders/:id", handler.AdminRequired, handler.DeleteOrder)
}
