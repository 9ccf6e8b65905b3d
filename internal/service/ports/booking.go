package ports

import (
	"context"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type BookingRepo interface {
	// CreateWithPayment inserts the booking and, when payment is
	// non-nil, its pending payment row in a single transaction.
	CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error)
	GetConfirmedByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	ListConfirmedByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	SetAttendance(ctx context.Context, bookingID string, status domain.AttendanceStatus, certificateEnabled bool) error
}
