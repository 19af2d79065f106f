package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/paymethods/internal/paymethods/store"
)

// AuditService periodically checks that no parent has more than one active
// payment method and logs any violation.
type AuditService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// OnResult, if set, receives the violation count of every completed run.
	OnResult func(violations int)

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewAuditService creates a new audit service with the given interval.
// If interval is 0 or negative, defaults to 15 minutes.
func NewAuditService(store store.Store, logger *slog.Logger, interval time.Duration) *AuditService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &AuditService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
func (s *AuditService) Start() {
	go s.run()
	s.Logger.Info("audit service started", "interval", s.Interval)
}

// Stop shuts down the background worker, waiting for an in-progress run.
func (s *AuditService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("audit service stopped")
}

func (s *AuditService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run immediately on startup
	_, _ = s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			_, _ = s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce counts parents with more than one active method.
func (s *AuditService) RunOnce(ctx context.Context) (int, error) {
	violations, err := s.Store.PaymentMethods().CountExclusivityViolations(ctx)
	if err != nil {
		s.Logger.Error("active method audit failed", "error", err)
		return 0, err
	}

	if violations > 0 {
		s.Logger.Error("parents with more than one active payment method", "violations", violations)
	} else {
		s.Logger.Debug("active method audit passed")
	}

	if s.OnResult != nil {
		s.OnResult(violations)
	}
	return violations, nil
}
