package services

import (
	"errors"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
	"github.com/sproutworks/ecopods/internal/security"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type OrderStore interface {
	CreateAwardingPoints(order *models.Order, ownerID uint, bonus int) error
	FindByID(orderID string) (models.Order, bool, error)
	UpdateStatusTimeline(order *models.Order) error
	DeleteByID(orderID string) error
}

type OrderService struct {
	orders     OrderStore
	now        func() time.Time
	newOrderID func() (string, error)
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{
		orders:     orders,
		now:        time.Now,
		newOrderID: NewOrderID,
	}
}

// NewOrderID returns "ORD-" plus six uppercase alphanumerics. Collisions
// are accepted as negligible and surface as a primary-key violation.
func NewOrderID() (string, error) {
	token, err := security.RandomString(6, orderIDAlphabet)
	if err != nil {
		return "", err
	}
	return "ORD-" + token, nil
}

// Create validates the draft, freezes the owner snapshot and the computed
// amount, seeds the timeline with the placed entry, and persists the order
// together with the owner's bonus points in one transaction.
func (service *OrderService) Create(owner models.User, draft OrderDraft) (models.Order, error) {
	ownerEmail := NormalizeEmail(owner.Email)
	if ownerEmail == "" {
		return models.Order{}, ErrEmailInvalid
	}
	if err := ValidateOrderDraft(draft); err != nil {
		return models.Order{}, err
	}

	orderID, err := service.newOrderID()
	if err != nil {
		return models.Order{}, err
	}

	now := service.now()
	order := models.Order{
		ID:         orderID,
		CreatedAt:  now,
		OwnerEmail: ownerEmail,
		User:       owner,
		WasteType:  draft.WasteType,
		Quantity:   draft.Quantity,
		Seed:       draft.Seed,
		Pods:       draft.Pods,
		Express:    draft.Express,
		Notes:      draft.Notes,
		PickupDate: draft.PickupDate,
		Amount:     ComputeTotal(draft.Pods, draft.Express),
		Paid:       draft.Paid,
		Status:     models.StatusPlaced,
		Timeline:   []models.TimelineEntry{{Status: models.StatusPlaced, At: now}},
	}

	bonus := AwardBonusPoints(draft.Quantity, draft.Paid)
	if err := service.orders.CreateAwardingPoints(&order, owner.ID, bonus); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Transition moves an order to any of the canonical statuses and records
// the jump on the timeline. It is an admin-only capability; reachability
// from the current status is intentionally not checked.
func (service *OrderService) Transition(orderID string, status string) (models.Order, error) {
	order, found, err := service.orders.FindByID(orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, ErrOrderNotFound
	}

	if err := ApplyStatus(&order, status, service.now()); err != nil {
		return models.Order{}, err
	}
	if err := service.orders.UpdateStatusTimeline(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Delete removes an order after an explicit confirmation. Declining the
// confirmation leaves state unchanged; earned points stay with the owner.
func (service *OrderService) Delete(orderID string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	_, found, err := service.orders.FindByID(orderID)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrderNotFound
	}
	return service.orders.DeleteByID(orderID)
}
