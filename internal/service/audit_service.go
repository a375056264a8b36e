package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ispsupport/hub/internal/observability"
)

const defaultAuditTimeout = 5 * time.Second

// AuditStore provides the write operations for the audit tables.
type AuditStore interface {
	InsertSearchLog(ctx context.Context, query string) error
	InsertActionLog(ctx context.Context, actionType, itemName, itemType string, scenarioID *int64) error
}

// AuditService records search queries and UI actions without blocking the
// request path. Each write runs in a detached goroutine with its own timeout
// context; a failed write is logged and counted, never surfaced to the caller.
type AuditService struct {
	store   AuditStore
	metrics observability.Recorder
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAuditService creates an AuditService. Metrics and Logger may be nil.
func NewAuditService(store AuditStore, metrics observability.Recorder, logger *slog.Logger) *AuditService {
	if metrics == nil {
		metrics = observability.NoopRecorder{}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AuditService{
		store:   store,
		metrics: metrics,
		logger:  logger,
		timeout: defaultAuditTimeout,
	}
}

// LogSearch records a search query and returns immediately.
func (s *AuditService) LogSearch(query string) {
	s.detach("search", func(ctx context.Context) error {
		return s.store.InsertSearchLog(ctx, query)
	})
}

// LogAction records a UI action and returns immediately.
func (s *AuditService) LogAction(actionType, itemName, itemType string, scenarioID *int64) {
	s.detach("action", func(ctx context.Context) error {
		return s.store.InsertActionLog(ctx, actionType, itemName, itemType, scenarioID)
	})
}

// detach runs write in its own goroutine with a fresh timeout context, so the
// write survives the originating request's cancellation.
func (s *AuditService) detach(kind string, write func(context.Context) error) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := write(ctx); err != nil {
			s.logger.Warn("audit: write dropped", "kind", kind, "error", err)
			s.metrics.IncAuditDropped(kind)
		}
	}()
}

// Wait blocks until all in-flight audit writes finish. Called during graceful
// shutdown so pending writes are not torn down with the process.
func (s *AuditService) Wait() {
	s.wg.Wait()
}
