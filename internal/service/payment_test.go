package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/metrics"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWith(prometheus.NewRegistry())
}

type paymentMocks struct {
	bookingRepo *mocks.MockBookingRepo
	paymentRepo *mocks.MockPaymentRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	gateway     *mocks.MockPaymentGateway
	notifier    *mocks.MockNotifier
	auditLog    *mocks.MockAuditLog
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	m := paymentMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		paymentRepo: mocks.NewMockPaymentRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		notifier:    mocks.NewMockNotifier(t),
		auditLog:    mocks.NewMockAuditLog(t),
	}
	svc := NewPaymentService(
		m.bookingRepo, m.paymentRepo, m.eventRepo, m.userRepo,
		m.gateway, m.notifier, m.auditLog,
		newTestMetrics(), time.Minute, newTestLogger(t),
	)
	return svc, m
}

func TestPaymentService_Initiate_PaidEvent(t *testing.T) {
	svc, m := newPaymentService(t)

	event := &domain.Event{ID: "e1", Title: "Annual Summit", Price: 1500}
	user := &domain.User{ID: "u1", FullName: "Alice Wanjiku", Phone: "254712345678"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.gateway.EXPECT().
		STKPush(mock.Anything, "254712345678", int64(3000), mock.Anything, "Registration: Annual Summit").
		Return(&domain.PushResult{CheckoutRequestID: "ws_CO_1", MerchantRequestID: "mr_1"}, nil)
	m.bookingRepo.EXPECT().
		CreateWithPayment(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking, p *domain.Payment) {
			assert.Equal(t, "ws_CO_1", b.CorrelationID)
			require.NotNil(t, p)
			assert.Equal(t, b.ID, p.BookingID)
			assert.Equal(t, int64(3000), p.Amount)
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
			assert.Equal(t, "ws_CO_1", p.CorrelationID)
		}).
		Return(nil)
	m.auditLog.EXPECT().Record(mock.Anything, "payment.initiated", "u1", mock.Anything, mock.Anything).Return()

	booking, err := svc.Initiate(context.Background(), InitiateInput{
		EventID: "e1", UserID: "u1", Phone: "0712345678", Tickets: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "254712345678", booking.Phone)
	assert.Equal(t, int64(3000), booking.Amount)
	assert.Equal(t, "ws_CO_1", booking.CorrelationID)
}

func TestPaymentService_Initiate_FreeEvent(t *testing.T) {
	svc, m := newPaymentService(t)

	event := &domain.Event{ID: "e1", Title: "Open Day", Price: 0}
	user := &domain.User{ID: "u1", FullName: "Alice Wanjiku"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().
		CreateWithPayment(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.Booking, p *domain.Payment) {
			assert.Nil(t, p)
		}).
		Return(nil)
	m.auditLog.EXPECT().Record(mock.Anything, "booking.created", "u1", mock.Anything, mock.Anything).Return()
	m.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, event, int64(0)).Return().Maybe()

	booking, err := svc.Initiate(context.Background(), InitiateInput{
		EventID: "e1", UserID: "u1", Phone: "0712345678", Tickets: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Empty(t, booking.CorrelationID)
	assert.Zero(t, booking.Amount)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Initiate_RejectsBadInput(t *testing.T) {
	t.Run("non-positive tickets", func(t *testing.T) {
		svc, _ := newPaymentService(t)

		_, err := svc.Initiate(context.Background(), InitiateInput{
			EventID: "e1", UserID: "u1", Phone: "0712345678", Tickets: 0,
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("bad phone", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Price: 100}, nil)
		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

		_, err := svc.Initiate(context.Background(), InitiateInput{
			EventID: "e1", UserID: "u1", Phone: "12345", Tickets: 1,
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, m := newPaymentService(t)

		m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

		_, err := svc.Initiate(context.Background(), InitiateInput{
			EventID: "missing", UserID: "u1", Phone: "0712345678", Tickets: 1,
		})

		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

func TestPaymentService_Initiate_PushFailureWritesNothing(t *testing.T) {
	svc, m := newPaymentService(t)

	event := &domain.Event{ID: "e1", Title: "Annual Summit", Price: 1500}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.gateway.EXPECT().
		STKPush(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.GatewayError{Code: "1032", Description: "Request cancelled by user"})

	_, err := svc.Initiate(context.Background(), InitiateInput{
		EventID: "e1", UserID: "u1", Phone: "0712345678", Tickets: 1,
	})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "1032", gwErr.Code)
	// No CreateWithPayment expectation: the booking repo must stay untouched.
}

func TestPaymentService_Confirm_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Amount: 1500, CorrelationID: "ws_CO_1"}
	user := &domain.User{ID: "u1", FullName: "Alice Wanjiku"}
	event := &domain.Event{ID: "e1", Title: "Annual Summit"}
	outcome := domain.ConfirmationOutcome{Success: true, ReceiptNumber: "QK12XYZ", ResultCode: 0}

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil)
	m.paymentRepo.EXPECT().ConfirmTerminal(mock.Anything, "ws_CO_1", outcome).Return(true, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "payment.confirmed", "gateway", mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, event, int64(1500)).Return().Maybe()

	err := svc.Confirm(context.Background(), "ws_CO_1", outcome)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Confirm_FailureNotifiesReason(t *testing.T) {
	svc, m := newPaymentService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", CorrelationID: "ws_CO_1"}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Title: "Annual Summit"}
	outcome := domain.ConfirmationOutcome{Success: false, ResultCode: 1032, ResultDescription: "Request cancelled by user"}

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil)
	m.paymentRepo.EXPECT().ConfirmTerminal(mock.Anything, "ws_CO_1", outcome).Return(true, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "payment.confirmed", "gateway", mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyPaymentFailed(mock.Anything, user, event, "Request cancelled by user").Return().Maybe()

	err := svc.Confirm(context.Background(), "ws_CO_1", outcome)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Confirm_DuplicateIsNoOp(t *testing.T) {
	svc, m := newPaymentService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", CorrelationID: "ws_CO_1"}
	outcome := domain.ConfirmationOutcome{Success: true, ReceiptNumber: "QK12XYZ"}

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil)
	m.paymentRepo.EXPECT().ConfirmTerminal(mock.Anything, "ws_CO_1", outcome).Return(false, nil)

	// No audit, no notification: the duplicate leaves no trace beyond a counter.
	err := svc.Confirm(context.Background(), "ws_CO_1", outcome)

	require.NoError(t, err)
}

func TestPaymentService_Confirm_UnknownCorrelation(t *testing.T) {
	svc, m := newPaymentService(t)

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_unknown").Return(nil, domain.ErrBookingNotFound)

	err := svc.Confirm(context.Background(), "ws_CO_unknown", domain.ConfirmationOutcome{Success: true})

	assert.ErrorIs(t, err, domain.ErrUnknownCorrelation)
}

func TestPaymentService_Poll_PendingLeavesStateAlone(t *testing.T) {
	svc, m := newPaymentService(t)

	booking := &domain.Booking{ID: "b1", CorrelationID: "ws_CO_1"}

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil)
	m.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").Return(&domain.PushStatus{Pending: true}, nil)

	status, err := svc.Poll(context.Background(), "ws_CO_1")

	require.NoError(t, err)
	assert.True(t, status.Pending)
}

func TestPaymentService_Poll_TerminalConfirms(t *testing.T) {
	svc, m := newPaymentService(t)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Amount: 1500, CorrelationID: "ws_CO_1"}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1", Title: "Annual Summit"}
	outcome := domain.ConfirmationOutcome{Success: true, ReceiptNumber: "QK12XYZ", ResultCode: 0}

	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil).Times(2)
	m.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").Return(&domain.PushStatus{Outcome: outcome}, nil)
	m.paymentRepo.EXPECT().ConfirmTerminal(mock.Anything, "ws_CO_1", outcome).Return(true, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "payment.confirmed", "gateway", mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.notifier.EXPECT().NotifyPaymentReceived(mock.Anything, user, event, int64(1500)).Return().Maybe()

	status, err := svc.Poll(context.Background(), "ws_CO_1")

	require.NoError(t, err)
	assert.False(t, status.Pending)
	assert.True(t, status.Outcome.Success)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_Reconcile_SkipsFailuresAndCounts(t *testing.T) {
	svc, m := newPaymentService(t)

	stale := []*domain.Payment{
		{ID: "p1", BookingID: "b1", CorrelationID: "ws_CO_1"},
		{ID: "p2", BookingID: "b2", CorrelationID: "ws_CO_2"},
		{ID: "p3", BookingID: "b3", CorrelationID: "ws_CO_3"},
	}
	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", CorrelationID: "ws_CO_1"}
	outcome := domain.ConfirmationOutcome{Success: false, ResultCode: 1037, ResultDescription: "DS timeout"}

	m.paymentRepo.EXPECT().ListStalePending(mock.Anything, time.Minute).Return(stale, nil)

	// ws_CO_1 resolves to a terminal failure.
	m.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_1").Return(&domain.PushStatus{Outcome: outcome}, nil)
	m.bookingRepo.EXPECT().GetByCorrelationID(mock.Anything, "ws_CO_1").Return(booking, nil)
	m.paymentRepo.EXPECT().ConfirmTerminal(mock.Anything, "ws_CO_1", outcome).Return(true, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "payment.confirmed", "gateway", mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.notifier.EXPECT().NotifyPaymentFailed(mock.Anything, mock.Anything, mock.Anything, "DS timeout").Return().Maybe()

	// ws_CO_2 is still processing.
	m.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_2").Return(&domain.PushStatus{Pending: true}, nil)

	// ws_CO_3 cannot be queried right now.
	m.gateway.EXPECT().QueryStatus(mock.Anything, "ws_CO_3").Return(nil, errors.New("connection refused"))

	resolved, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
