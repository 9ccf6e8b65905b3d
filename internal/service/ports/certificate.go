package ports

import (
	"context"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type CertificateRepo interface {
	// InsertIfAbsent atomically creates the certificate unless the
	// (event, user) pair already holds one. It returns created=false
	// and the existing row when the pair is already certified.
	InsertIfAbsent(ctx context.Context, c *domain.Certificate) (created bool, existing *domain.Certificate, err error)
	GetByID(ctx context.Context, id string) (*domain.Certificate, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error)
	SetSentEmail(ctx context.Context, id string) error
	SetDownloaded(ctx context.Context, id string) error
}
