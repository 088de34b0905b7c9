package stock

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog-sync/core/catalog"
	"catalog-sync/core/validation"
)

// Service applies stock update batches transactionally.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	notifier Notifier
}

// NewService creates a new stock service.
func NewService(db *gorm.DB, logger *zap.Logger, notifier Notifier) *Service {
	return &Service{db: db, logger: logger, notifier: notifier}
}

// UpdateStock validates and applies one batch. All writes happen inside
// one transaction; transition notifications are dispatched only after it
// commits. Requests against a non-live partition return an empty result
// map without error, mirroring how stock storage behaves. Items that
// cannot be resolved, or whose stock is unchanged, are skipped without a
// result entry.
func (s *Service) UpdateStock(ctx context.Context, versionID string, req UpdateRequest) (map[string]Result, error) {
	if err := validateUpdates(req.Updates); err != nil {
		return nil, err
	}

	results := make(map[string]Result)
	if versionID != catalog.LiveVersion {
		return results, nil
	}

	numberToID, err := s.resolveNumbers(ctx, versionID, req.Updates)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(req.Updates))
	for _, update := range req.Updates {
		if update.ID != "" {
			ids = append(ids, update.ID)
		} else if id, ok := numberToID[update.ProductNumber]; ok {
			ids = append(ids, id)
		}
	}

	snapshots, err := catalog.LoadStockSnapshots(ctx, s.db, versionID, ids)
	if err != nil {
		return nil, err
	}

	var noLongerAvailable []string
	var nowAvailable []string
	var thresholdExceeded []string

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range req.Updates {
			id := update.ID
			if id == "" {
				id = numberToID[update.ProductNumber]
			}

			snap, ok := snapshots[id]
			if id == "" || !ok {
				continue
			}

			oldStock := snap.Stock
			newStock := *update.Stock

			// Strict equality short-circuit: no write, no result, no event.
			if oldStock == newStock {
				continue
			}

			// Only closeout products become unavailable through depletion.
			newAvailable := true
			if snap.IsCloseout {
				newAvailable = newStock >= snap.MinPurchase
			}

			err := tx.Model(&catalog.Product{}).
				Where("id = ? AND version_id = ?", id, versionID).
				Updates(map[string]any{
					"stock":     newStock,
					"available": newAvailable,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update stock for %s: %w", id, err)
			}

			results[id] = Result{
				OldStock:     oldStock,
				NewStock:     newStock,
				OldAvailable: snap.Available,
				NewAvailable: newAvailable,
			}

			if snap.Available && !newAvailable {
				noLongerAvailable = append(noLongerAvailable, id)
			}
			if !snap.Available && newAvailable {
				nowAvailable = append(nowAvailable, id)
			}

			// Threshold crossing is strictly upward and independent of the
			// availability transitions.
			if update.Threshold != nil {
				threshold := *update.Threshold
				if oldStock <= threshold && newStock > threshold {
					thresholdExceeded = append(thresholdExceeded, id)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, noLongerAvailable, nowAvailable, thresholdExceeded)

	s.logger.Info("Stock batch applied",
		zap.Int("submitted", len(req.Updates)),
		zap.Int("applied", len(results)),
		zap.Int("no_longer_available", len(noLongerAvailable)),
		zap.Int("now_available", len(nowAvailable)),
		zap.Int("threshold_exceeded", len(thresholdExceeded)))

	return results, nil
}

// dispatch raises the post-commit notifications. Regained availability
// and threshold crossings map to the same external cache-invalidation
// event and are delivered as one combined, deduplicated call.
func (s *Service) dispatch(ctx context.Context, noLongerAvailable, nowAvailable, thresholdExceeded []string) {
	if len(noLongerAvailable) > 0 {
		s.notifier.ProductsNoLongerAvailable(ctx, noLongerAvailable)
	}

	seen := make(map[string]struct{}, len(nowAvailable)+len(thresholdExceeded))
	var invalidate []string
	for _, id := range append(nowAvailable, thresholdExceeded...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		invalidate = append(invalidate, id)
	}
	if len(invalidate) > 0 {
		s.notifier.InvalidateProductCache(ctx, invalidate)
	}
}

// resolveNumbers performs the single batched number-to-id lookup for the
// batch. Numbers without a match are simply absent from the map.
func (s *Service) resolveNumbers(ctx context.Context, versionID string, updates []UpdateItem) (map[string]string, error) {
	var numbers []string
	seen := make(map[string]struct{})
	for _, update := range updates {
		if update.ID != "" || update.ProductNumber == "" {
			continue
		}
		if _, ok := seen[update.ProductNumber]; ok {
			continue
		}
		seen[update.ProductNumber] = struct{}{}
		numbers = append(numbers, update.ProductNumber)
	}
	return catalog.ProductNumbersToIDs(ctx, s.db, versionID, numbers)
}

func validateUpdates(updates []UpdateItem) error {
	var violations validation.Violations

	if len(updates) == 0 {
		violations.Add("updates", validation.CodeRequired, "at least one update must be provided")
		return violations.OrNil()
	}

	for i, update := range updates {
		path := fmt.Sprintf("updates/%d", i)

		switch {
		case update.ID == "" && update.ProductNumber == "":
			violations.Add(path, validation.CodeIdentifierNotGiven,
				`either "id" or "productNumber" must be provided`)
		case update.ID != "" && update.ProductNumber != "":
			violations.Add(path, validation.CodeIdentifierNotGiven,
				`only one of "id" and "productNumber" may be provided`)
		}

		if update.Stock == nil {
			violations.Add(path+"/stock", validation.CodeRequired, "stock is required")
		}
	}

	return violations.OrNil()
}
