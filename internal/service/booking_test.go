package service

import (
	"context"
	"testing"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_SetAttendance(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditLog := mocks.NewMockAuditLog(t)

	svc := NewBookingService(bookingRepo, auditLog, newTestLogger(t))

	bookingRepo.EXPECT().SetAttendance(mock.Anything, "b1", domain.AttendanceAttended, true).Return(nil)
	auditLog.EXPECT().Record(mock.Anything, "booking.attendance_set", "admin@example.com", mock.Anything, mock.Anything).Return()

	err := svc.SetAttendance(context.Background(), "b1", domain.AttendanceAttended, true, "admin@example.com")

	require.NoError(t, err)
}

func TestBookingService_SetAttendance_RejectsUnknownStatus(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditLog := mocks.NewMockAuditLog(t)

	svc := NewBookingService(bookingRepo, auditLog, newTestLogger(t))

	err := svc.SetAttendance(context.Background(), "b1", domain.AttendanceStatus("present"), false, "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SetAttendance_RequiresActor(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditLog := mocks.NewMockAuditLog(t)

	svc := NewBookingService(bookingRepo, auditLog, newTestLogger(t))

	err := svc.SetAttendance(context.Background(), "b1", domain.AttendanceAttended, false, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SetAttendance_UnknownBooking(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditLog := mocks.NewMockAuditLog(t)

	svc := NewBookingService(bookingRepo, auditLog, newTestLogger(t))

	bookingRepo.EXPECT().SetAttendance(mock.Anything, "missing", domain.AttendanceAbsent, false).Return(domain.ErrBookingNotFound)

	err := svc.SetAttendance(context.Background(), "missing", domain.AttendanceAbsent, false, "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByUser(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	auditLog := mocks.NewMockAuditLog(t)

	svc := NewBookingService(bookingRepo, auditLog, newTestLogger(t))

	bookings := []*domain.Booking{{ID: "b1", UserID: "u1"}}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	got, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}
