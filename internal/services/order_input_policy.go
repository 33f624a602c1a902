package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sproutworks/ecopods/internal/models"
)

var (
	ErrPickupDateRequired = errors.New("pickup date required")
	ErrPickupDateInvalid  = errors.New("pickup date invalid")
	ErrOrderUnpaid        = errors.New("order not paid")
	ErrWasteTypeInvalid   = errors.New("waste type invalid")
	ErrSeedInvalid        = errors.New("seed invalid")
	ErrQuantityInvalid    = errors.New("quantity invalid")
	ErrPodCountInvalid    = errors.New("pod count invalid")
)

const MinPodsPerOrder = 5

const pickupDateLayout = "2006-01-02"

var wasteTypes = map[string]struct{}{
	models.WasteNewspaper: {},
	models.WasteEggshells: {},
	models.WasteCardboard: {},
}

var seedKinds = map[string]struct{}{
	models.SeedTulsi:     {},
	models.SeedMint:      {},
	models.SeedCoriander: {},
	models.SeedTomato:    {},
	models.SeedChilli:    {},
}

type OrderDraft struct {
	WasteType  string
	Quantity   float64
	Seed       string
	Pods       int
	Express    bool
	Notes      string
	PickupDate string
	Paid       bool
}

func IsValidWasteType(wasteType string) bool {
	_, ok := wasteTypes[wasteType]
	return ok
}

func IsValidSeed(seed string) bool {
	_, ok := seedKinds[seed]
	return ok
}

// ValidateOrderDraft rejects a draft before any state is touched. A failed
// validation is user-correctable; no order is created.
func ValidateOrderDraft(draft OrderDraft) error {
	pickupDate := strings.TrimSpace(draft.PickupDate)
	if pickupDate == "" {
		return ErrPickupDateRequired
	}
	if _, err := time.Parse(pickupDateLayout, pickupDate); err != nil {
		return ErrPickupDateInvalid
	}
	if !draft.Paid {
		return ErrOrderUnpaid
	}
	if !IsValidWasteType(draft.WasteType) {
		return ErrWasteTypeInvalid
	}
	if !IsValidSeed(draft.Seed) {
		return ErrSeedInvalid
	}
	if draft.Quantity <= 0 {
		return ErrQuantityInvalid
	}
	if draft.Pods < MinPodsPerOrder {
		return ErrPodCountInvalid
	}
	return nil
}
