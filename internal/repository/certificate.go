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

const certificateColumns = `id, event_id, user_id, issued_at, issued_by, sent_email, downloaded`

type CertificateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCertificateRepo(db *dbpg.DB) *CertificateRepository {
	return &CertificateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// InsertIfAbsent relies on the unique (event_id, user_id) index rather
// than a read-then-write check, so a single issue and a concurrent bulk
// pass racing on the same pair still produce exactly one row. The loser
// of the race gets created=false plus the winning row.
func (r *CertificateRepository) InsertIfAbsent(ctx context.Context, c *domain.Certificate) (bool, *domain.Certificate, error) {
	query := `INSERT INTO certificates (id, event_id, user_id, issued_at, issued_by, sent_email, downloaded)
			  VALUES ($1, $2, $3, $4, $5, false, false)
			  ON CONFLICT (event_id, user_id) DO NOTHING`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.EventID, c.UserID, c.IssuedAt, c.IssuedBy,
	)
	if err != nil {
		return false, nil, fmt.Errorf("insert certificate: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, nil, fmt.Errorf("certificate rows affected: %w", err)
	}
	if rows > 0 {
		return true, c, nil
	}

	existing, err := r.getByEventAndUser(ctx, c.EventID, c.UserID)
	if err != nil {
		return false, nil, err
	}

	return false, existing, nil
}

func (r *CertificateRepository) getByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE event_id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}

	return scanCertificate(row)
}

func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}

	return scanCertificate(row)
}

func (r *CertificateRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE event_id=$1
			  ORDER BY issued_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list certificates by event: %w", err)
	}
	defer rows.Close()

	return collectCertificates(rows)
}

func (r *CertificateRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + `
			  FROM certificates
			  WHERE user_id=$1
			  ORDER BY issued_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates by user: %w", err)
	}
	defer rows.Close()

	return collectCertificates(rows)
}

func (r *CertificateRepository) SetSentEmail(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "sent_email")
}

func (r *CertificateRepository) SetDownloaded(ctx context.Context, id string) error {
	return r.setFlag(ctx, id, "downloaded")
}

func (r *CertificateRepository) setFlag(ctx context.Context, id, column string) error {
	// column is one of two fixed names, never user input.
	query := fmt.Sprintf(`UPDATE certificates SET %s=true WHERE id=$1`, column)

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("set certificate %s: %w", column, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("certificate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCertificateNotFound
	}

	return nil
}

func scanCertificate(row rowScanner) (*domain.Certificate, error) {
	var c domain.Certificate
	if err := row.Scan(
		&c.ID, &c.EventID, &c.UserID, &c.IssuedAt, &c.IssuedBy, &c.SentEmail, &c.Downloaded,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("scan certificate: %w", err)
	}

	return &c, nil
}

func collectCertificates(rows *sql.Rows) ([]*domain.Certificate, error) {
	var res []*domain.Certificate
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
