package ports

import (
	"context"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type Notifier interface {
	NotifyPaymentReceived(ctx context.Context, user *domain.User, event *domain.Event, amount int64)
	NotifyPaymentFailed(ctx context.Context, user *domain.User, event *domain.Event, reason string)
	NotifyCertificateIssued(ctx context.Context, user *domain.User, event *domain.Event)
}
