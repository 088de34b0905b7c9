package price

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog-sync/core/catalog"
	"catalog-sync/core/reconcile"
)

// Service reconciles price update batches against the catalog.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new price service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// UpdatePrices validates, resolves and reconciles one batch, applies the
// resulting operation log in one transaction, and returns the per-product
// result map. A validation failure is returned as
// validation.Violations before anything runs. Unresolvable references
// are dropped silently: one bad reference does not fail the batch.
func (s *Service) UpdatePrices(ctx context.Context, versionID string, req UpdateRequest) (map[string]Result, error) {
	currencies, err := catalog.Currencies(ctx, s.db)
	if err != nil {
		return nil, err
	}

	items, err := validateUpdates(req.Updates, currencies)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveItems(ctx, versionID, items)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resolved))
	for _, item := range resolved {
		ids = append(ids, item.id)
	}

	snapshots, err := catalog.LoadPriceSnapshots(ctx, s.db, versionID, ids)
	if err != nil {
		return nil, err
	}

	results := make(map[string]Result, len(resolved))
	var ops []reconcile.Operation

	for _, item := range resolved {
		snap, ok := snapshots[item.id]
		if !ok {
			continue
		}

		itemOps := buildOperations(versionID, item, snap)
		if len(itemOps) == 0 {
			results[item.id] = Result{Updated: false, Reason: "No changes detected"}
			continue
		}

		ops = append(ops, itemOps...)
		results[item.id] = Result{Updated: true}
	}

	if err := reconcile.Apply(ctx, s.db, ops); err != nil {
		return nil, fmt.Errorf("failed to apply price operations: %w", err)
	}

	s.logger.Info("Price batch reconciled",
		zap.Int("submitted", len(req.Updates)),
		zap.Int("resolved", len(resolved)),
		zap.Int("operations", len(ops)))

	return results, nil
}

// resolveItems turns product-number references into id references using
// one batched lookup. Items already carrying an id pass through; numbers
// without a match are dropped.
func (s *Service) resolveItems(ctx context.Context, versionID string, items []updateItem) ([]updateItem, error) {
	var numbers []string
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.id != "" {
			continue
		}
		if _, ok := seen[item.productNumber]; ok {
			continue
		}
		seen[item.productNumber] = struct{}{}
		numbers = append(numbers, item.productNumber)
	}

	numberToID, err := catalog.ProductNumbersToIDs(ctx, s.db, versionID, numbers)
	if err != nil {
		return nil, err
	}

	resolved := make([]updateItem, 0, len(items))
	for _, item := range items {
		if item.id != "" {
			resolved = append(resolved, item)
			continue
		}
		id, ok := numberToID[item.productNumber]
		if !ok {
			continue
		}
		item.id = id
		item.productNumber = ""
		resolved = append(resolved, item)
	}
	return resolved, nil
}
