package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type certificateMocks struct {
	certRepo    *mocks.MockCertificateRepo
	bookingRepo *mocks.MockBookingRepo
	paymentRepo *mocks.MockPaymentRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	renderer    *mocks.MockCertificateRenderer
	mailer      *mocks.MockMailer
	notifier    *mocks.MockNotifier
	auditLog    *mocks.MockAuditLog
}

func newCertificateService(t *testing.T) (*CertificateService, certificateMocks) {
	m := certificateMocks{
		certRepo:    mocks.NewMockCertificateRepo(t),
		bookingRepo: mocks.NewMockBookingRepo(t),
		paymentRepo: mocks.NewMockPaymentRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		renderer:    mocks.NewMockCertificateRenderer(t),
		mailer:      mocks.NewMockMailer(t),
		notifier:    mocks.NewMockNotifier(t),
		auditLog:    mocks.NewMockAuditLog(t),
	}
	svc := NewCertificateService(
		m.certRepo, m.bookingRepo, m.paymentRepo, m.eventRepo, m.userRepo,
		m.renderer, m.mailer, m.notifier, m.auditLog,
		newTestMetrics(), newTestLogger(t),
	)
	return svc, m
}

func TestCertificateService_Generate_PaidAndAttended(t *testing.T) {
	svc, m := newCertificateMocksWithEligibleBooking(t, domain.AttendanceAttended, false)

	m.certRepo.EXPECT().
		InsertIfAbsent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, c *domain.Certificate) {
			assert.Equal(t, "e1", c.EventID)
			assert.Equal(t, "u1", c.UserID)
			assert.Equal(t, "admin@example.com", c.IssuedBy)
			assert.True(t, strings.HasPrefix(c.ID, "CERT-"))
		}).
		Return(true, nil, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.issued", "admin@example.com", mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	res, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

	require.NoError(t, err)
	assert.False(t, res.AlreadyIssued)
	assert.NotEmpty(t, res.CertificateID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// newCertificateMocksWithEligibleBooking wires the lookup chain up to
// the issuance step: paid event, confirmed booking, completed payment.
func newCertificateMocksWithEligibleBooking(t *testing.T, attendance domain.AttendanceStatus, override bool) (*CertificateService, certificateMocks) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Title: "Annual Summit", Price: 1500}
	booking := &domain.Booking{
		ID: "b1", EventID: "e1", UserID: "u1",
		Status:             domain.BookingStatusConfirmed,
		AttendanceStatus:   attendance,
		CertificateEnabled: override,
	}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().GetConfirmedByEventAndUser(mock.Anything, "e1", "u1").Return(booking, nil)
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b1").
		Return(&domain.Payment{ID: "p1", BookingID: "b1", Status: domain.PaymentStatusCompleted}, nil)

	return svc, m
}

func TestCertificateService_Generate_SecondCallReturnsSameID(t *testing.T) {
	svc, m := newCertificateMocksWithEligibleBooking(t, domain.AttendanceAttended, false)

	existing := &domain.Certificate{ID: "CERT-E1-U1-ABCD1234", EventID: "e1", UserID: "u1"}
	m.certRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(false, existing, nil)

	res, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

	require.NoError(t, err)
	assert.True(t, res.AlreadyIssued)
	assert.Equal(t, "CERT-E1-U1-ABCD1234", res.CertificateID)
}

func TestCertificateService_Generate_DeniedWithoutBooking(t *testing.T) {
	svc, m := newCertificateService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Price: 1500}, nil)
	m.bookingRepo.EXPECT().GetConfirmedByEventAndUser(mock.Anything, "e1", "u1").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrNotBooked)
}

func TestCertificateService_Generate_DeniedWithoutPayment(t *testing.T) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Price: 1500}
	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().GetConfirmedByEventAndUser(mock.Anything, "e1", "u1").Return(booking, nil)
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b1").
		Return(&domain.Payment{ID: "p1", Status: domain.PaymentStatusPending}, nil)

	_, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrNotPaid)
}

func TestCertificateService_Generate_FreeEventSkipsPaymentGate(t *testing.T) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Title: "Open Day", Price: 0}
	booking := &domain.Booking{
		ID: "b1", EventID: "e1", UserID: "u1",
		Status:           domain.BookingStatusConfirmed,
		AttendanceStatus: domain.AttendanceAttended,
	}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().GetConfirmedByEventAndUser(mock.Anything, "e1", "u1").Return(booking, nil)
	m.certRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(true, nil, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.issued", mock.Anything, mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	res, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

	require.NoError(t, err)
	assert.False(t, res.AlreadyIssued)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCertificateService_Generate_AttendanceGate(t *testing.T) {
	t.Run("unverified denied", func(t *testing.T) {
		svc, _ := newCertificateMocksWithEligibleBooking(t, domain.AttendanceUnverified, false)

		_, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

		assert.ErrorIs(t, err, domain.ErrNotEligibleAttendance)
	})

	t.Run("override beats absent", func(t *testing.T) {
		svc, m := newCertificateMocksWithEligibleBooking(t, domain.AttendanceAbsent, true)

		m.certRepo.EXPECT().InsertIfAbsent(mock.Anything, mock.Anything).Return(true, nil, nil)
		m.auditLog.EXPECT().Record(mock.Anything, "certificate.issued", mock.Anything, mock.Anything, mock.Anything).Return()
		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
		m.notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

		res, err := svc.Generate(context.Background(), "e1", "u1", "admin@example.com")

		require.NoError(t, err)
		assert.NotEmpty(t, res.CertificateID)

		time.Sleep(50 * time.Millisecond) // goroutine notify
	})
}

func TestCertificateService_Generate_RequiresActor(t *testing.T) {
	svc, _ := newCertificateService(t)

	_, err := svc.Generate(context.Background(), "e1", "u1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCertificateService_BulkGenerate_MixedCohort(t *testing.T) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Title: "Annual Summit", Price: 1500}
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", AttendanceStatus: domain.AttendanceAttended},
		{ID: "b2", EventID: "e1", UserID: "u2", AttendanceStatus: domain.AttendanceAttended},
		{ID: "b3", EventID: "e1", UserID: "u3", AttendanceStatus: domain.AttendanceAbsent},
		{ID: "b4", EventID: "e1", UserID: "u4", AttendanceStatus: domain.AttendanceAttended},
	}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().ListConfirmedByEvent(mock.Anything, "e1").Return(bookings, nil)

	paid := &domain.Payment{Status: domain.PaymentStatusCompleted}
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b1").Return(paid, nil)
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b2").Return(paid, nil)
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b4").Return(nil, domain.ErrPaymentNotFound)

	// u1 gets a fresh certificate, u2 already has one, u3 and u4 are skipped.
	m.certRepo.EXPECT().
		InsertIfAbsent(mock.Anything, mock.MatchedBy(func(c *domain.Certificate) bool { return c.UserID == "u1" })).
		Return(true, nil, nil)
	m.certRepo.EXPECT().
		InsertIfAbsent(mock.Anything, mock.MatchedBy(func(c *domain.Certificate) bool { return c.UserID == "u2" })).
		Return(false, &domain.Certificate{ID: "CERT-OLD", EventID: "e1", UserID: "u2"}, nil)

	m.auditLog.EXPECT().Record(mock.Anything, "certificate.issued", mock.Anything, mock.Anything, mock.Anything).Return()
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.bulk_generated", mock.Anything, mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	result, err := svc.BulkGenerate(context.Background(), "e1", "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.AlreadyIssued)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 2, result.TotalEligible)
	assert.Len(t, result.Items, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCertificateService_BulkGenerate_RepeatRunIsStable(t *testing.T) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Price: 0}
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", AttendanceStatus: domain.AttendanceAttended},
		{ID: "b2", EventID: "e1", UserID: "u2", AttendanceStatus: domain.AttendanceAttended},
	}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().ListConfirmedByEvent(mock.Anything, "e1").Return(bookings, nil)
	m.certRepo.EXPECT().
		InsertIfAbsent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, c *domain.Certificate) (bool, *domain.Certificate, error) {
			return false, &domain.Certificate{ID: "CERT-" + c.UserID, EventID: c.EventID, UserID: c.UserID}, nil
		}).Times(2)
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.bulk_generated", mock.Anything, mock.Anything, mock.Anything).Return()

	result, err := svc.BulkGenerate(context.Background(), "e1", "admin@example.com")

	require.NoError(t, err)
	assert.Zero(t, result.Generated)
	assert.Equal(t, 2, result.AlreadyIssued)
	assert.Zero(t, result.Failed)
}

func TestCertificateService_BulkGenerate_StorageFailureIsReported(t *testing.T) {
	svc, m := newCertificateService(t)

	event := &domain.Event{ID: "e1", Price: 1500}
	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", AttendanceStatus: domain.AttendanceAttended},
		{ID: "b2", EventID: "e1", UserID: "u2", AttendanceStatus: domain.AttendanceAttended},
	}
	paid := &domain.Payment{Status: domain.PaymentStatusCompleted}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.bookingRepo.EXPECT().ListConfirmedByEvent(mock.Anything, "e1").Return(bookings, nil)
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b1").Return(nil, errors.New("connection reset"))
	m.paymentRepo.EXPECT().GetByBookingID(mock.Anything, "b2").Return(paid, nil)
	m.certRepo.EXPECT().
		InsertIfAbsent(mock.Anything, mock.MatchedBy(func(c *domain.Certificate) bool { return c.UserID == "u2" })).
		Return(true, nil, nil)
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.issued", mock.Anything, mock.Anything, mock.Anything).Return()
	m.auditLog.EXPECT().Record(mock.Anything, "certificate.bulk_generated", mock.Anything, mock.Anything, mock.Anything).Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.notifier.EXPECT().NotifyCertificateIssued(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	result, err := svc.BulkGenerate(context.Background(), "e1", "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.TotalEligible)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCertificateService_SendCertificate(t *testing.T) {
	svc, m := newCertificateService(t)

	cert := &domain.Certificate{
		ID: "CERT-1", EventID: "e1", UserID: "u1",
		IssuedAt: time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
	}
	event := &domain.Event{
		ID: "e1", Title: "Annual Summit", CPDPoints: 5,
		EventDate: time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
	}
	user := &domain.User{ID: "u1", FullName: "Alice Wanjiku", Email: "alice@example.com"}
	artifact := &domain.Artifact{Name: "CERT-1.html", ContentType: "text/html", Data: []byte("<html>")}

	m.certRepo.EXPECT().GetByID(mock.Anything, "CERT-1").Return(cert, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.renderer.EXPECT().
		Render(mock.Anything, mock.MatchedBy(func(c domain.CertificateContent) bool {
			return c.CertificateID == "CERT-1" &&
				c.RecipientName == "Alice Wanjiku" &&
				c.EventDateLabel == "12 June 2025" &&
				c.IssuedDateLabel == "14 June 2025"
		})).
		Return(artifact, nil)
	m.mailer.EXPECT().
		Send(mock.Anything, "alice@example.com", "Your certificate for Annual Summit", mock.Anything, artifact).
		Return(nil)
	m.certRepo.EXPECT().SetSentEmail(mock.Anything, "CERT-1").Return(nil)

	err := svc.SendCertificate(context.Background(), "CERT-1")

	require.NoError(t, err)
}

func TestCertificateService_SendCertificate_MailFailureKeepsFlagUnset(t *testing.T) {
	svc, m := newCertificateService(t)

	cert := &domain.Certificate{ID: "CERT-1", EventID: "e1", UserID: "u1"}

	m.certRepo.EXPECT().GetByID(mock.Anything, "CERT-1").Return(cert, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Title: "Annual Summit"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "alice@example.com"}, nil)
	m.renderer.EXPECT().Render(mock.Anything, mock.Anything).Return(&domain.Artifact{}, nil)
	m.mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused"))

	err := svc.SendCertificate(context.Background(), "CERT-1")

	require.Error(t, err)
	// No SetSentEmail expectation: the flag only flips after a delivered mail.
}

func TestCertificateService_SendCertificate_RequiresEmail(t *testing.T) {
	svc, m := newCertificateService(t)

	cert := &domain.Certificate{ID: "CERT-1", EventID: "e1", UserID: "u1"}

	m.certRepo.EXPECT().GetByID(mock.Anything, "CERT-1").Return(cert, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	err := svc.SendCertificate(context.Background(), "CERT-1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCertificateService_BulkSend_ContinuesPastFailures(t *testing.T) {
	svc, m := newCertificateService(t)

	certs := []*domain.Certificate{
		{ID: "CERT-1", EventID: "e1", UserID: "u1"},
		{ID: "CERT-2", EventID: "e1", UserID: "u2"},
	}
	event := &domain.Event{ID: "e1", Title: "Annual Summit"}

	m.certRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(certs, nil)
	m.certRepo.EXPECT().GetByID(mock.Anything, "CERT-1").Return(certs[0], nil)
	m.certRepo.EXPECT().GetByID(mock.Anything, "CERT-2").Return(certs[1], nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Times(2)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", Email: "b@example.com"}, nil)
	m.renderer.EXPECT().Render(mock.Anything, mock.Anything).Return(&domain.Artifact{}, nil)
	m.mailer.EXPECT().Send(mock.Anything, "b@example.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.certRepo.EXPECT().SetSentEmail(mock.Anything, "CERT-2").Return(nil)

	result, err := svc.BulkSend(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Items, 2)
	assert.False(t, result.Items[0].Sent)
	assert.True(t, result.Items[1].Sent)
}

func TestCertificateService_MarkDownloaded(t *testing.T) {
	svc, m := newCertificateService(t)

	m.certRepo.EXPECT().SetDownloaded(mock.Anything, "CERT-1").Return(nil)

	require.NoError(t, svc.MarkDownloaded(context.Background(), "CERT-1"))
}
