package ports

import (
	"context"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

// CertificateRenderer produces the certificate document artifact. PDF
// layout lives behind this boundary and is not a core concern.
type CertificateRenderer interface {
	Render(ctx context.Context, content domain.CertificateContent) (*domain.Artifact, error)
}

// Mailer dispatches a certificate to its recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string, attachment *domain.Artifact) error
}

// AuditLog is an append-only, best-effort journal. Implementations
// swallow their own failures; callers never see them.
type AuditLog interface {
	Record(ctx context.Context, action, actor, details, level string)
}
