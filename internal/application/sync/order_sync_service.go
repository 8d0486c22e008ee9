// Package sync drives the order-to-folder pipeline: pull every order page
// for a date range from the storefront, normalize each order, plan its
// folder layout and emit it to local storage.
package sync

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orderman/backend/internal/domain/fulfillment"
	"github.com/orderman/backend/internal/domain/storefront"
)

// baseFolderDateLayout names the per-run base folder, e.g. "24.06.2024 order".
const baseFolderDateLayout = "02.01.2006"

// SyncResult summarizes one completed sync run.
type SyncResult struct {
	// RunID identifies the run in logs
	RunID uuid.UUID
	// ProcessedCount is the number of orders materialized into folders
	ProcessedCount int
	// OutputPath is the base folder the run wrote into
	OutputPath string
	// Duration is the wall-clock time of the run
	Duration time.Duration
}

// OrderSyncService orchestrates one synchronous sync run at a time. Any
// failure - fetch, data shape or filesystem - aborts the whole run; there
// is no partial-success reporting and a mid-run failure leaves the folders
// written so far on disk.
type OrderSyncService struct {
	source     storefront.OrderSource
	store      fulfillment.FileStore
	emitter    *fulfillment.Emitter
	outputRoot string
	logger     *zap.Logger
	now        func() time.Time
}

// Option is a functional option for OrderSyncService configuration.
type Option func(*OrderSyncService)

// WithClock overrides the clock used to name the run's base folder.
func WithClock(now func() time.Time) Option {
	return func(s *OrderSyncService) {
		s.now = now
	}
}

// NewOrderSyncService creates a new OrderSyncService.
func NewOrderSyncService(source storefront.OrderSource, store fulfillment.FileStore, outputRoot string, logger *zap.Logger, opts ...Option) *OrderSyncService {
	s := &OrderSyncService{
		source:     source,
		store:      store,
		emitter:    fulfillment.NewEmitter(store),
		outputRoot: outputRoot,
		logger:     logger,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SyncOrders pulls all orders created within [startDate, endDate] (both
// "2006-01-02", inclusive) and materializes them into the categorized
// folder tree. Re-running for the same calendar day overwrites existing
// files in place.
func (s *OrderSyncService) SyncOrders(ctx context.Context, startDate, endDate string) (*SyncResult, error) {
	started := s.now()
	runID := uuid.New()
	log := s.logger.With(
		zap.String("run_id", runID.String()),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)

	orders, err := s.fetchAllOrders(ctx, log, startDate, endDate)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(s.outputRoot, started.Format(baseFolderDateLayout)+" order")
	if err := s.store.EnsureDir(baseDir); err != nil {
		return nil, fmt.Errorf("sync: creating base folder: %w", err)
	}

	for _, order := range orders {
		octx, err := fulfillment.BuildOrderContext(order)
		if err != nil {
			return nil, fmt.Errorf("sync: normalizing order %s: %w", order.Name, err)
		}

		plan := fulfillment.PlanOrder(octx, baseDir)
		if err := s.emitter.Emit(plan); err != nil {
			return nil, fmt.Errorf("sync: emitting order %s: %w", order.Name, err)
		}
	}

	result := &SyncResult{
		RunID:          runID,
		ProcessedCount: len(orders),
		OutputPath:     baseDir,
		Duration:       time.Since(started),
	}

	log.Info("Order sync completed",
		zap.Int("processed_count", result.ProcessedCount),
		zap.String("output_path", result.OutputPath),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// fetchAllOrders walks the storefront's cursor pagination until the source
// reports no further pages, preserving page order. The date range is
// validated here once, before the first pull, so an OrderSource that skips
// its own validation cannot let a bad range through.
func (s *OrderSyncService) fetchAllOrders(ctx context.Context, log *zap.Logger, startDate, endDate string) ([]storefront.Order, error) {
	req := &storefront.OrderPullRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var orders []storefront.Order
	for {
		page, err := s.source.PullOrders(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("sync: pulling orders: %w", err)
		}

		orders = append(orders, page.Orders...)
		log.Debug("Order page pulled",
			zap.Int("page_orders", len(page.Orders)),
			zap.Bool("has_more", page.HasMore),
		)

		if !page.HasMore {
			return orders, nil
		}
		// A stalled cursor would replay the same page forever.
		if page.NextCursor == "" || page.NextCursor == req.Cursor {
			return nil, fmt.Errorf("sync: pulling orders: %w: pagination cursor did not advance", storefront.ErrSourceInvalidResponse)
		}
		req.Cursor = page.NextCursor
	}
}
