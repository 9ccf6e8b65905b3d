package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, event_id, user_id, phone, tickets, amount, status,
			  correlation_id, attendance_status, certificate_enabled, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, event_id, user_id, phone, tickets, amount, status,
				correlation_id, attendance_status, certificate_enabled, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.EventID, b.UserID, b.Phone, b.Tickets, b.Amount, b.Status,
		b.CorrelationID, b.AttendanceStatus, b.CertificateEnabled, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if p != nil {
		query = `INSERT INTO payments (id, booking_id, amount, method, status,
					correlation_id, merchant_request_id, receipt_number, result_description, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		_, err = tx.ExecContext(
			ctx, query,
			p.ID, p.BookingID, p.Amount, p.Method, p.Status,
			p.CorrelationID, p.MerchantRequestID, p.ReceiptNumber, p.ResultDescription, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

// GetByCorrelationID resolves the booking a provider confirmation
// refers to. The correlation_id column carries a unique index, so the
// lookup is O(1).
func (r *BookingRepository) GetByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE correlation_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, correlationID)
	if err != nil {
		return nil, fmt.Errorf("get booking by correlation id: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) GetConfirmedByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id=$1 AND user_id=$2 AND status=$3
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get confirmed booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) ListConfirmedByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id=$1 AND status=$2
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// SetAttendance is deliberately unrestricted: attendance is a
// post-event administrative classification and may be corrected any
// number of times.
func (r *BookingRepository) SetAttendance(ctx context.Context, bookingID string, status domain.AttendanceStatus, certificateEnabled bool) error {
	query := `UPDATE bookings
			  SET attendance_status=$2, certificate_enabled=$3, updated_at=now()
			  WHERE id=$1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, status, certificateEnabled)
	if err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attendance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var correlationID sql.NullString
	if err := row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.Phone, &b.Tickets, &b.Amount, &b.Status,
		&correlationID, &b.AttendanceStatus, &b.CertificateEnabled, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.CorrelationID = correlationID.String

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
