package ports

import (
	"context"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type PaymentRepo interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)
	// ConfirmTerminal applies the joint payment/booking transition for
	// the given correlation id, but only while the payment is still
	// pending. It reports whether the transition was applied; false
	// with a nil error means a duplicate confirmation.
	ConfirmTerminal(ctx context.Context, correlationID string, outcome domain.ConfirmationOutcome) (bool, error)
	ListStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Payment, error)
}
