package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type paymentReconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// Scheduler periodically sweeps payments stuck in pending, covering
// confirmation deliveries the callback endpoint never received.
type Scheduler struct {
	paymentService paymentReconciler
	interval       time.Duration
	logger         logger.Logger
}

func New(
	paymentService paymentReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciliation scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciliation scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	resolved, err := s.paymentService.Reconcile(ctx)
	if err != nil {
		s.logger.Error("payment reconciliation failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if resolved > 0 {
		s.logger.Info("stale payments resolved",
			logger.Int("count", resolved),
		)
	}
}
