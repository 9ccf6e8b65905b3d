package ports

import (
	"context"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type PaymentGateway interface {
	STKPush(ctx context.Context, phone string, amount int64, reference, description string) (*domain.PushResult, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (*domain.PushStatus, error)
}
