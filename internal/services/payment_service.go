package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const DefaultPaymentDelay = 300 * time.Millisecond

// PaymentReceipt acknowledges a successful demo charge. There is no real
// gateway behind it; every charge succeeds.
type PaymentReceipt struct {
	Reference string    `json:"reference"`
	Paid      bool      `json:"paid"`
	PaidAt    time.Time `json:"paid_at"`
}

type PaymentService struct {
	delay time.Duration
	now   func() time.Time
}

// NewPaymentService builds the mock gateway. A negative delay selects the
// default; zero disables the artificial wait, which tests rely on.
func NewPaymentService(delay time.Duration) *PaymentService {
	if delay < 0 {
		delay = DefaultPaymentDelay
	}
	return &PaymentService{delay: delay, now: time.Now}
}

// Charge waits the cosmetic acknowledgment delay and returns a paid
// receipt with a fresh reference. There are no retries and no failures
// beyond context cancellation.
func (service *PaymentService) Charge(ctx context.Context) (PaymentReceipt, error) {
	if service.delay > 0 {
		timer := time.NewTimer(service.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return PaymentReceipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	return PaymentReceipt{
		Reference: uuid.New().String(),
		Paid:      true,
		PaidAt:    service.now(),
	}, nil
}
