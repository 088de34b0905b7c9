package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PriceSnapshot is the read-only price state of one product, loaded once
// per batch for diffing. It is never mutated; reconcilers compare old vs
// new as pure functions.
type PriceSnapshot struct {
	ID    string
	Price PriceSet
	Tiers []TierSnapshot
}

// TierSnapshot is one persisted advanced price tier. ID is the storage
// identifier used for deletes and in-place updates.
type TierSnapshot struct {
	ID            string
	RuleID        string
	QuantityStart int
	QuantityEnd   *int
	Price         PriceSet
}

// StockSnapshot is the stock-relevant state of one product with the
// parent fallback for closeout and min-purchase already applied.
type StockSnapshot struct {
	ID          string
	Stock       int
	Available   bool
	IsCloseout  bool
	MinPurchase int
}

// Currencies returns the full ISO-code-to-id mapping in one query.
func Currencies(ctx context.Context, db *gorm.DB) (map[string]string, error) {
	var rows []Currency
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load currencies: %w", err)
	}

	codes := make(map[string]string, len(rows))
	for _, row := range rows {
		codes[row.ISOCode] = row.ID
	}
	return codes, nil
}

// ProductNumbersToIDs resolves product numbers to ids within one version
// partition using a single batched query. Numbers without a matching row
// are absent from the result.
func ProductNumbersToIDs(ctx context.Context, db *gorm.DB, versionID string, numbers []string) (map[string]string, error) {
	if len(numbers) == 0 {
		return map[string]string{}, nil
	}

	var rows []Product
	err := db.WithContext(ctx).
		Select("id", "product_number").
		Where("product_number IN ? AND version_id = ?", numbers, versionID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product numbers: %w", err)
	}

	resolved := make(map[string]string, len(rows))
	for _, row := range rows {
		resolved[row.ProductNumber] = row.ID
	}
	return resolved, nil
}

// LoadPriceSnapshots fetches price and tier state for a batch of ids in
// two queries total (products, then all their tiers). Ids without a
// matching product are absent from the result.
func LoadPriceSnapshots(ctx context.Context, db *gorm.DB, versionID string, ids []string) (map[string]PriceSnapshot, error) {
	if len(ids) == 0 {
		return map[string]PriceSnapshot{}, nil
	}

	var products []Product
	err := db.WithContext(ctx).
		Select("id", "price").
		Where("id IN ? AND version_id = ?", ids, versionID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load price snapshots: %w", err)
	}

	snapshots := make(map[string]PriceSnapshot, len(products))
	found := make([]string, 0, len(products))
	for _, p := range products {
		snapshots[p.ID] = PriceSnapshot{ID: p.ID, Price: p.Price}
		found = append(found, p.ID)
	}

	if len(found) == 0 {
		return snapshots, nil
	}

	var tiers []ProductPrice
	err = db.WithContext(ctx).
		Where("product_id IN ?", found).
		Order("product_id, rule_id, quantity_start").
		Find(&tiers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load price tiers: %w", err)
	}

	for _, tier := range tiers {
		snap := snapshots[tier.ProductID]
		snap.Tiers = append(snap.Tiers, TierSnapshot{
			ID:            tier.ID,
			RuleID:        tier.RuleID,
			QuantityStart: tier.QuantityStart,
			QuantityEnd:   tier.QuantityEnd,
			Price:         tier.Price,
		})
		snapshots[tier.ProductID] = snap
	}

	return snapshots, nil
}

type stockRow struct {
	ID          string
	Stock       int
	Available   bool
	IsCloseout  bool
	MinPurchase int
}

// LoadStockSnapshots fetches stock, availability, closeout and
// min-purchase for a batch of ids in one query. Closeout falls back to
// the parent's value and then to false; min-purchase falls back to the
// parent's value and then to 1, modeling variant inheritance.
func LoadStockSnapshots(ctx context.Context, db *gorm.DB, versionID string, ids []string) (map[string]StockSnapshot, error) {
	if len(ids) == 0 {
		return map[string]StockSnapshot{}, nil
	}

	var rows []stockRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			product.id AS id,
			product.stock AS stock,
			product.available AS available,
			COALESCE(product.is_closeout, parent.is_closeout, 0) AS is_closeout,
			COALESCE(product.min_purchase, parent.min_purchase, 1) AS min_purchase
		FROM product
		LEFT JOIN product AS parent
			ON parent.id = product.parent_id
			AND parent.version_id = product.version_id
		WHERE product.id IN ? AND product.version_id = ?`,
		ids, versionID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshots: %w", err)
	}

	snapshots := make(map[string]StockSnapshot, len(rows))
	for _, row := range rows {
		snapshots[row.ID] = StockSnapshot{
			ID:          row.ID,
			Stock:       row.Stock,
			Available:   row.Available,
			IsCloseout:  row.IsCloseout,
			MinPurchase: row.MinPurchase,
		}
	}
	return snapshots, nil
}
