package services

import (
	"errors"
	"testing"

	"github.com/sproutworks/ecopods/internal/models"
)

func validDraft() OrderDraft {
	return OrderDraft{
		WasteType:  models.WasteNewspaper,
		Quantity:   2.5,
		Seed:       models.SeedTulsi,
		Pods:       10,
		Express:    false,
		PickupDate: "2026-03-02",
		Paid:       true,
	}
}

func TestValidateOrderDraftAcceptsValidDraft(t *testing.T) {
	t.Parallel()

	if err := ValidateOrderDraft(validDraft()); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

func TestValidateOrderDraftRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*OrderDraft)
		wantErr error
	}{
		{
			name:    "missing pickup date",
			mutate:  func(draft *OrderDraft) { draft.PickupDate = "" },
			wantErr: ErrPickupDateRequired,
		},
		{
			name:    "blank pickup date",
			mutate:  func(draft *OrderDraft) { draft.PickupDate = "   " },
			wantErr: ErrPickupDateRequired,
		},
		{
			name:    "malformed pickup date",
			mutate:  func(draft *OrderDraft) { draft.PickupDate = "02/03/2026" },
			wantErr: ErrPickupDateInvalid,
		},
		{
			name:    "unpaid",
			mutate:  func(draft *OrderDraft) { draft.Paid = false },
			wantErr: ErrOrderUnpaid,
		},
		{
			name:    "unknown waste type",
			mutate:  func(draft *OrderDraft) { draft.WasteType = "plastic" },
			wantErr: ErrWasteTypeInvalid,
		},
		{
			name:    "unknown seed",
			mutate:  func(draft *OrderDraft) { draft.Seed = "cactus" },
			wantErr: ErrSeedInvalid,
		},
		{
			name:    "zero quantity",
			mutate:  func(draft *OrderDraft) { draft.Quantity = 0 },
			wantErr: ErrQuantityInvalid,
		},
		{
			name:    "negative quantity",
			mutate:  func(draft *OrderDraft) { draft.Quantity = -1 },
			wantErr: ErrQuantityInvalid,
		},
		{
			name:    "below minimum pods",
			mutate:  func(draft *OrderDraft) { draft.Pods = 4 },
			wantErr: ErrPodCountInvalid,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			draft := validDraft()
			test.mutate(&draft)
			if err := ValidateOrderDraft(draft); !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestValidateOrderDraftUnpaidRejectedRegardlessOfOtherFields(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Paid = false
	draft.Express = true
	draft.Pods = 500
	if err := ValidateOrderDraft(draft); !errors.Is(err, ErrOrderUnpaid) {
		t.Fatalf("expected ErrOrderUnpaid, got %v", err)
	}
}
