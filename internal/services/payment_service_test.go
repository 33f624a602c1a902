package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPaymentServiceChargeAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	service := NewPaymentService(0)
	receipt, err := service.Charge(context.Background())
	if err != nil {
		t.Fatalf("Charge returned error: %v", err)
	}
	if !receipt.Paid {
		t.Fatal("expected receipt to be paid")
	}
	if receipt.Reference == "" {
		t.Fatal("expected a payment reference")
	}

	second, err := service.Charge(context.Background())
	if err != nil {
		t.Fatalf("Charge returned error: %v", err)
	}
	if second.Reference == receipt.Reference {
		t.Fatal("expected a fresh reference per charge")
	}
}

func TestPaymentServiceChargeHonorsCancellation(t *testing.T) {
	t.Parallel()

	service := NewPaymentService(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.Charge(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewPaymentServiceNegativeDelaySelectsDefault(t *testing.T) {
	t.Parallel()

	service := NewPaymentService(-1)
	if service.delay != DefaultPaymentDelay {
		t.Fatalf("expected default delay, got %v", service.delay)
	}
}
