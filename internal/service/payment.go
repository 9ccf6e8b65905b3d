package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/audit"
	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/metrics"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const paymentMethodMpesa = "mpesa"

type InitiateInput struct {
	EventID string
	UserID  string
	Phone   string
	Tickets int
}

type PaymentService struct {
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	gateway     ports.PaymentGateway
	notifier    ports.Notifier
	auditLog    ports.AuditLog
	metrics     *metrics.Metrics
	staleAfter  time.Duration
	logger      logger.Logger
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	auditLog ports.AuditLog,
	m *metrics.Metrics,
	staleAfter time.Duration,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		notifier:    notifier,
		auditLog:    auditLog,
		metrics:     m,
		staleAfter:  staleAfter,
		logger:      logger,
	}
}

// Initiate validates the booking request, pushes the payment prompt to
// the payer's device and records the pending booking/payment pair keyed
// by the gateway's correlation id. Free events short-circuit to a
// confirmed booking without touching the gateway. A failed push writes
// nothing; the caller retries with a brand-new Initiate, which gets a
// fresh correlation id.
func (s *PaymentService) Initiate(ctx context.Context, in InitiateInput) (*domain.Booking, error) {
	if in.Tickets <= 0 {
		return nil, fmt.Errorf("%w: tickets must be positive", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	// Reject bad input before any gateway traffic.
	phone, err := domain.NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		EventID:          in.EventID,
		UserID:           in.UserID,
		Phone:            phone,
		Tickets:          in.Tickets,
		Amount:           event.Price * int64(in.Tickets),
		Status:           domain.BookingStatusPending,
		AttendanceStatus: domain.AttendanceUnverified,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if event.IsFree() {
		booking.Status = domain.BookingStatusConfirmed
		if err = s.bookingRepo.CreateWithPayment(ctx, booking, nil); err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}

		s.logger.Info("free booking confirmed",
			logger.String("booking_id", booking.ID),
			logger.String("event_id", in.EventID),
			logger.String("user_id", in.UserID),
		)
		s.auditLog.Record(ctx, "booking.created", in.UserID,
			fmt.Sprintf("free event %s, booking %s", in.EventID, booking.ID), audit.LevelInfo)

		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), user, event, 0)

		return booking, nil
	}

	push, err := s.gateway.STKPush(ctx, phone, booking.Amount, booking.ID, "Registration: "+event.Title)
	if err != nil {
		return nil, fmt.Errorf("push payment: %w", err)
	}

	booking.CorrelationID = push.CheckoutRequestID
	payment := &domain.Payment{
		ID:                uuid.New().String(),
		BookingID:         booking.ID,
		Amount:            booking.Amount,
		Method:            paymentMethodMpesa,
		Status:            domain.PaymentStatusPending,
		CorrelationID:     push.CheckoutRequestID,
		MerchantRequestID: push.MerchantRequestID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err = s.bookingRepo.CreateWithPayment(ctx, booking, payment); err != nil {
		return nil, fmt.Errorf("create booking with payment: %w", err)
	}

	s.metrics.PaymentsInitiated.Inc()
	s.logger.Info("payment initiated",
		logger.String("booking_id", booking.ID),
		logger.String("correlation_id", booking.CorrelationID),
		logger.Int64("amount", booking.Amount),
	)
	s.auditLog.Record(ctx, "payment.initiated", in.UserID,
		fmt.Sprintf("booking %s, correlation %s, amount %d", booking.ID, booking.CorrelationID, booking.Amount),
		audit.LevelInfo)

	return booking, nil
}

// Confirm is the single entry point for payment confirmations, reached
// by the provider callback and by status polls alike. The first call
// for a correlation id applies the joint booking/payment transition;
// every later call, whatever outcome it repeats, is a success no-op.
func (s *PaymentService) Confirm(ctx context.Context, correlationID string, outcome domain.ConfirmationOutcome) error {
	booking, err := s.bookingRepo.GetByCorrelationID(ctx, correlationID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Warn("confirmation for unknown correlation id",
				logger.String("correlation_id", correlationID),
			)
			return domain.ErrUnknownCorrelation
		}
		return fmt.Errorf("resolve correlation id: %w", err)
	}

	applied, err := s.paymentRepo.ConfirmTerminal(ctx, correlationID, outcome)
	if err != nil {
		return fmt.Errorf("apply confirmation: %w", err)
	}

	if !applied {
		s.metrics.DuplicateConfirmations.Inc()
		s.logger.Debug("duplicate confirmation ignored",
			logger.String("correlation_id", correlationID),
		)
		return nil
	}

	s.metrics.ConfirmationApplied(outcome.Success)
	s.logger.Info("payment confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("correlation_id", correlationID),
		logger.Bool("success", outcome.Success),
		logger.String("receipt", outcome.ReceiptNumber),
	)
	s.auditLog.Record(ctx, "payment.confirmed", "gateway",
		fmt.Sprintf("booking %s, correlation %s, success %t, receipt %s",
			booking.ID, correlationID, outcome.Success, outcome.ReceiptNumber),
		audit.LevelInfo)

	s.notifyOutcome(ctx, booking, outcome)

	return nil
}

// Poll asks the provider for the current status of a push request and
// funnels a terminal answer through Confirm, so a lost callback can
// still reach the same end state.
func (s *PaymentService) Poll(ctx context.Context, correlationID string) (*domain.PushStatus, error) {
	if _, err := s.bookingRepo.GetByCorrelationID(ctx, correlationID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrUnknownCorrelation
		}
		return nil, fmt.Errorf("resolve correlation id: %w", err)
	}

	status, err := s.gateway.QueryStatus(ctx, correlationID)
	if err != nil {
		return nil, fmt.Errorf("query status: %w", err)
	}

	if status.Pending {
		return status, nil
	}

	if err = s.Confirm(ctx, correlationID, status.Outcome); err != nil {
		return nil, err
	}

	return status, nil
}

// Reconcile sweeps payments left pending beyond the stale window and
// polls each one. Individual failures are logged and skipped; the sweep
// never aborts.
func (s *PaymentService) Reconcile(ctx context.Context) (int, error) {
	pending, err := s.paymentRepo.ListStalePending(ctx, s.staleAfter)
	if err != nil {
		return 0, fmt.Errorf("list stale payments: %w", err)
	}

	var resolved int
	for _, p := range pending {
		status, err := s.gateway.QueryStatus(ctx, p.CorrelationID)
		if err != nil {
			s.logger.Error("reconcile query failed",
				logger.String("correlation_id", p.CorrelationID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if status.Pending {
			continue
		}

		if err = s.Confirm(ctx, p.CorrelationID, status.Outcome); err != nil {
			s.logger.Error("reconcile confirm failed",
				logger.String("correlation_id", p.CorrelationID),
				logger.String("error", err.Error()),
			)
			continue
		}
		resolved++
	}

	return resolved, nil
}

func (s *PaymentService) notifyOutcome(ctx context.Context, booking *domain.Booking, outcome domain.ConfirmationOutcome) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	if outcome.Success {
		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), user, event, booking.Amount)
	} else {
		go s.notifier.NotifyPaymentFailed(context.WithoutCancel(ctx), user, event, outcome.ResultDescription)
	}
}
