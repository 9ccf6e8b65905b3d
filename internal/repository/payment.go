package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, booking_id, amount, method, status,
			  correlation_id, merchant_request_id, receipt_number, result_description, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE booking_id=$1
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return scanPayment(row)
}

// ConfirmTerminal moves the payment and its booking to their terminal
// states in one transaction, conditioned on the payment still being
// pending. A zero-row update means the correlation id was already
// finalized; the caller treats that as a duplicate, not an error. This
// conditional update is what makes confirmation idempotent under
// concurrent callback and poll delivery.
func (r *PaymentRepository) ConfirmTerminal(ctx context.Context, correlationID string, outcome domain.ConfirmationOutcome) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	paymentStatus := domain.PaymentStatusCompleted
	bookingStatus := domain.BookingStatusConfirmed
	if !outcome.Success {
		paymentStatus = domain.PaymentStatusFailed
		bookingStatus = domain.BookingStatusCancelled
	}

	query := `UPDATE payments p
			  SET status=$2, receipt_number=$3, result_description=$4, updated_at=now()
			  FROM bookings b
			  WHERE p.booking_id = b.id
			    AND b.correlation_id = $1
			    AND p.status = $5`
	res, err := tx.ExecContext(
		ctx, query,
		correlationID, paymentStatus, outcome.ReceiptNumber, outcome.ResultDescription,
		domain.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("finalize payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		// Already finalized by the other delivery path.
		return false, nil
	}

	query = `UPDATE bookings
			 SET status=$2, updated_at=now()
			 WHERE correlation_id=$1`
	if _, err = tx.ExecContext(ctx, query, correlationID, bookingStatus); err != nil {
		return false, fmt.Errorf("finalize booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit confirmation: %w", err)
	}

	return true, nil
}

func (r *PaymentRepository) ListStalePending(ctx context.Context, olderThan time.Duration) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE status=$1
			    AND created_at < now() - make_interval(secs => $2)
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PaymentStatusPending, olderThan.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list stale pending payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	if err := row.Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status,
		&p.CorrelationID, &p.MerchantRequestID, &p.ReceiptNumber, &p.ResultDescription, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}
