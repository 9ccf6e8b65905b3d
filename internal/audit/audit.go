// Package audit journals privileged mutations to an append-only table.
// Recording is strictly best-effort: a failed write is logged and
// swallowed so it can never alter the outcome of the operation being
// journaled.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	LevelInfo    = "info"
	LevelWarning = "warning"
)

type Log struct {
	db  *dbpg.DB
	log logger.Logger
}

func New(db *dbpg.DB, log logger.Logger) *Log {
	return &Log{db: db, log: log}
}

func (l *Log) Record(ctx context.Context, action, actor, details, level string) {
	query := `INSERT INTO audit_log (id, action, actor, details, level, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := l.db.Master.ExecContext(
		ctx, query,
		uuid.New().String(), action, actor, details, level, time.Now().UTC(),
	)
	if err != nil {
		l.log.Error("audit record dropped",
			logger.String("action", action),
			logger.String("actor", actor),
			logger.String("error", err.Error()),
		)
	}
}
