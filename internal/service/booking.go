package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/devray254/bookable-festivals-sub000/internal/audit"
	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	auditLog    ports.AuditLog
	logger      logger.Logger
}

func NewBookingService(bookingRepo ports.BookingRepo, auditLog ports.AuditLog, logger logger.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		auditLog:    auditLog,
		logger:      logger,
	}
}

// SetAttendance records the post-event classification and the manual
// certificate override. It carries no state-machine restriction: a
// privileged actor may correct the classification any number of times.
func (s *BookingService) SetAttendance(ctx context.Context, bookingID string, status domain.AttendanceStatus, certificateEnabled bool, actor string) error {
	if actor == "" {
		return fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}
	if !slices.Contains(domain.AttendanceStatuses, status) {
		return fmt.Errorf("%w: unknown attendance status %q", domain.ErrValidation, status)
	}

	if err := s.bookingRepo.SetAttendance(ctx, bookingID, status, certificateEnabled); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	s.logger.Info("attendance updated",
		logger.String("booking_id", bookingID),
		logger.String("attendance_status", string(status)),
		logger.Bool("certificate_enabled", certificateEnabled),
		logger.String("actor", actor),
	)
	s.auditLog.Record(ctx, "booking.attendance_set", actor,
		fmt.Sprintf("booking %s, attendance %s, override %t", bookingID, status, certificateEnabled),
		audit.LevelInfo)

	return nil
}

func (s *BookingService) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	return s.bookingRepo.GetConfirmedByEventAndUser(ctx, eventID, userID)
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListConfirmedByEvent(ctx, eventID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
