package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/audit"
	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/metrics"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type CertificateService struct {
	certRepo    ports.CertificateRepo
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	renderer    ports.CertificateRenderer
	mailer      ports.Mailer
	notifier    ports.Notifier
	auditLog    ports.AuditLog
	metrics     *metrics.Metrics
	logger      logger.Logger
}

func NewCertificateService(
	certRepo ports.CertificateRepo,
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	renderer ports.CertificateRenderer,
	mailer ports.Mailer,
	notifier ports.Notifier,
	auditLog ports.AuditLog,
	m *metrics.Metrics,
	logger logger.Logger,
) *CertificateService {
	return &CertificateService{
		certRepo:    certRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		mailer:      mailer,
		notifier:    notifier,
		auditLog:    auditLog,
		metrics:     m,
		logger:      logger,
	}
}

// Generate issues a certificate for the (event, user) pair after the
// full eligibility chain passes. Issuing an already-certified pair is
// reported as success carrying the existing id, never as a duplicate
// row or an error.
func (s *CertificateService) Generate(ctx context.Context, eventID, userID, actor string) (*domain.IssueResult, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetConfirmedByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrNotBooked
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.requirePayment(ctx, event, booking); err != nil {
		return nil, err
	}

	if !booking.EligibleForCertificate() {
		return nil, domain.ErrNotEligibleAttendance
	}

	return s.issue(ctx, event, booking, actor)
}

// requirePayment enforces the payment gate: a completed payment, unless
// the event is free.
func (s *CertificateService) requirePayment(ctx context.Context, event *domain.Event, booking *domain.Booking) error {
	if event.IsFree() {
		return nil
	}

	payment, err := s.paymentRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return domain.ErrNotPaid
		}
		return fmt.Errorf("get payment: %w", err)
	}
	if payment.Status != domain.PaymentStatusCompleted {
		return domain.ErrNotPaid
	}

	return nil
}

// issue is the uniqueness-protected creation step shared by single and
// bulk generation. The storage layer does the check-and-insert
// atomically; issue never pre-reads to decide.
func (s *CertificateService) issue(ctx context.Context, event *domain.Event, booking *domain.Booking, actor string) (*domain.IssueResult, error) {
	cert := &domain.Certificate{
		ID:       newCertificateID(event.ID, booking.UserID),
		EventID:  event.ID,
		UserID:   booking.UserID,
		IssuedAt: time.Now().UTC(),
		IssuedBy: actor,
	}

	created, existing, err := s.certRepo.InsertIfAbsent(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("insert certificate: %w", err)
	}

	if !created {
		return &domain.IssueResult{CertificateID: existing.ID, AlreadyIssued: true}, nil
	}

	s.metrics.CertificatesIssued.Inc()
	s.logger.Info("certificate issued",
		logger.String("certificate_id", cert.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", booking.UserID),
		logger.String("actor", actor),
	)
	s.auditLog.Record(ctx, "certificate.issued", actor,
		fmt.Sprintf("certificate %s, event %s, user %s", cert.ID, event.ID, booking.UserID),
		audit.LevelInfo)

	if user, err := s.userRepo.GetByID(ctx, booking.UserID); err == nil {
		go s.notifier.NotifyCertificateIssued(context.WithoutCancel(ctx), user, event)
	}

	return &domain.IssueResult{CertificateID: cert.ID}, nil
}

// BulkGenerate issues certificates for every eligible attendee of the
// event. One attendee's failure never aborts the rest; already-issued
// pairs count as skips, not errors, so repeated runs are stable.
func (s *CertificateService) BulkGenerate(ctx context.Context, eventID, actor string) (*domain.BulkResult, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListConfirmedByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := &domain.BulkResult{Items: []domain.BulkItem{}}
	for _, booking := range bookings {
		if !booking.EligibleForCertificate() {
			continue
		}
		if err := s.requirePayment(ctx, event, booking); err != nil {
			if errors.Is(err, domain.ErrNotPaid) {
				continue
			}
			// Storage trouble for one attendee: report and move on.
			result.Failed++
			result.TotalEligible++
			result.Items = append(result.Items, domain.BulkItem{
				UserID: booking.UserID,
				Status: domain.BulkItemFailed,
				Reason: err.Error(),
			})
			continue
		}

		result.TotalEligible++

		res, err := s.issue(ctx, event, booking, actor)
		if err != nil {
			result.Failed++
			result.Items = append(result.Items, domain.BulkItem{
				UserID: booking.UserID,
				Status: domain.BulkItemFailed,
				Reason: err.Error(),
			})
			continue
		}

		item := domain.BulkItem{UserID: booking.UserID, CertificateID: res.CertificateID}
		if res.AlreadyIssued {
			result.AlreadyIssued++
			item.Status = domain.BulkItemAlreadyIssued
		} else {
			result.Generated++
			item.Status = domain.BulkItemIssued
		}
		result.Items = append(result.Items, item)
	}

	s.logger.Info("bulk certificate generation finished",
		logger.String("event_id", eventID),
		logger.Int("generated", result.Generated),
		logger.Int("already_issued", result.AlreadyIssued),
		logger.Int("failed", result.Failed),
		logger.Int("total_eligible", result.TotalEligible),
	)
	s.auditLog.Record(ctx, "certificate.bulk_generated", actor,
		fmt.Sprintf("event %s: %d generated, %d already issued, %d failed of %d eligible",
			eventID, result.Generated, result.AlreadyIssued, result.Failed, result.TotalEligible),
		audit.LevelInfo)

	return result, nil
}

func (s *CertificateService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error) {
	return s.certRepo.ListByEvent(ctx, eventID)
}

func (s *CertificateService) ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error) {
	return s.certRepo.ListByUser(ctx, userID)
}

// SendCertificate renders the document and emails it to the recipient,
// flipping sent_email only after the dispatcher reports success.
func (s *CertificateService) SendCertificate(ctx context.Context, certificateID string) error {
	cert, err := s.certRepo.GetByID(ctx, certificateID)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.GetByID(ctx, cert.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, cert.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user.Email == "" {
		return fmt.Errorf("%w: user %s has no email", domain.ErrValidation, user.ID)
	}

	artifact, err := s.renderer.Render(ctx, domain.CertificateContent{
		CertificateID:   cert.ID,
		RecipientName:   user.FullName,
		EventTitle:      event.Title,
		EventDateLabel:  event.EventDate.Format("2 January 2006"),
		IssuedDateLabel: cert.IssuedAt.Format("2 January 2006"),
		CPDPoints:       event.CPDPoints,
		TargetAudience:  event.TargetAudience,
	})
	if err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}

	subject := "Your certificate for " + event.Title
	body := fmt.Sprintf("Dear %s,\n\nPlease find attached your certificate of participation for %s.\n",
		user.FullName, event.Title)

	if err = s.mailer.Send(ctx, user.Email, subject, body, artifact); err != nil {
		return fmt.Errorf("send certificate: %w", err)
	}

	if err = s.certRepo.SetSentEmail(ctx, cert.ID); err != nil {
		return fmt.Errorf("mark certificate sent: %w", err)
	}

	s.metrics.CertificateEmailsSent.Inc()
	s.logger.Info("certificate emailed",
		logger.String("certificate_id", cert.ID),
		logger.String("email", user.Email),
	)

	return nil
}

// BulkSend emails every certificate of the event, continuing past
// individual failures and reporting the per-recipient outcome.
func (s *CertificateService) BulkSend(ctx context.Context, eventID string) (*domain.BulkSendResult, error) {
	certs, err := s.certRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	result := &domain.BulkSendResult{Items: []domain.SendItem{}}
	for _, cert := range certs {
		if err := s.SendCertificate(ctx, cert.ID); err != nil {
			result.Failed++
			result.Items = append(result.Items, domain.SendItem{
				CertificateID: cert.ID,
				Reason:        err.Error(),
			})
			continue
		}
		result.Sent++
		result.Items = append(result.Items, domain.SendItem{
			CertificateID: cert.ID,
			Sent:          true,
		})
	}

	return result, nil
}

func (s *CertificateService) MarkDownloaded(ctx context.Context, certificateID string) error {
	return s.certRepo.SetDownloaded(ctx, certificateID)
}

// newCertificateID builds a serial that is traceable back to its event
// and user while staying globally unique through the uuid suffix.
func newCertificateID(eventID, userID string) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("CERT-%s-%s-%s", idPrefix(eventID), idPrefix(userID), strings.ToUpper(suffix))
}

func idPrefix(id string) string {
	clean := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(clean) > 8 {
		clean = clean[:8]
	}
	return clean
}
