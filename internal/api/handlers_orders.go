package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sproutworks/ecopods/internal/services"
)

type quoteInput struct {
	Pods    int  `json:"pods" form:"pods"`
	Express bool `json:"express" form:"express"`
}

type orderInput struct {
	WasteType  string  `json:"waste_type" form:"waste_type"`
	Quantity   float64 `json:"quantity" form:"quantity"`
	Seed       string  `json:"seed" form:"seed"`
	Pods       int     `json:"pods" form:"pods"`
	Express    bool    `json:"express" form:"express"`
	Notes      string  `json:"notes" form:"notes"`
	PickupDate string  `json:"pickup_date" form:"pickup_date"`
	Paid       bool    `json:"paid" form:"paid"`
}

func (handler *Handler) QuoteOrder(c *fiber.Ctx) error {
	input := quoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Pods < 0 {
		return apiError(c, fiber.StatusBadRequest, "pod count invalid")
	}

	expressFee := 0
	if input.Express {
		expressFee = services.ExpressFee
	}
	return c.JSON(fiber.Map{
		"base_fee":    services.BaseFee,
		"pods_fee":    services.PerPodFee * input.Pods,
		"express_fee": expressFee,
		"total":       services.ComputeTotal(input.Pods, input.Express),
	})
}

func (handler *Handler) CreateOrder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := orderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	order, err := handler.orderService.Create(*user, services.OrderDraft{
		WasteType:  input.WasteType,
		Quantity:   input.Quantity,
		Seed:       input.Seed,
		Pods:       input.Pods,
		Express:    input.Express,
		Notes:      input.Notes,
		PickupDate: input.PickupDate,
		Paid:       input.Paid,
	})
	if err != nil {
		if message, ok := orderValidationMessage(err); ok {
			return apiError(c, fiber.StatusBadRequest, message)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create order")
	}

	return c.Status(fiber.StatusCreated).JSON(buildOrderView(order))
}

func (handler *Handler) ListMyOrders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	orders, err := handler.repositories.Orders.ListByOwnerEmail(user.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load orders")
	}
	return c.JSON(buildOrderViews(orders))
}

func (handler *Handler) GetOrder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	order, found, err := handler.repositories.Orders.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load order")
	}
	if !found || order.OwnerEmail != user.Email {
		return apiError(c, fiber.StatusNotFound, "order not found")
	}
	return c.JSON(buildOrderView(order))
}

func orderValidationMessage(err error) (string, bool) {
	validationErrors := []error{
		services.ErrEmailInvalid,
		services.ErrPickupDateRequired,
		services.ErrPickupDateInvalid,
		services.ErrOrderUnpaid,
		services.ErrWasteTypeInvalid,
		services.ErrSeedInvalid,
		services.ErrQuantityInvalid,
		services.ErrPodCountInvalid,
	}
	for _, validationError := range validationErrors {
		if errors.Is(err, validationError) {
			return validationError.Error(), true
		}
	}
	return "", false
}
