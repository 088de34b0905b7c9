package reconcile

import (
	"context"
	"fmt"

	"catalog-sync/core/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Apply executes the operation log inside one transaction. Either every
// operation is applied or none is; a failing operation aborts the whole
// batch and the error propagates to the caller.
func Apply(ctx context.Context, db *gorm.DB, ops []Operation) error {
	if len(ops) == 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := applyOne(tx, op); err != nil {
				return fmt.Errorf("operation %q failed: %w", op.Key, err)
			}
		}
		return nil
	})
}

func applyOne(tx *gorm.DB, op Operation) error {
	switch {
	case op.Action == ActionUpsert && op.Entity == EntityProduct:
		patches, ok := op.Records.([]catalog.ProductPricePatch)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", op.Records)
		}
		for _, patch := range patches {
			err := tx.Model(&catalog.Product{}).
				Where("id = ? AND version_id = ?", patch.ID, patch.VersionID).
				Update("price", patch.Price).Error
			if err != nil {
				return err
			}
		}
		return nil

	case op.Action == ActionUpsert && op.Entity == EntityProductPrice:
		tiers, ok := op.Records.([]catalog.ProductPrice)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", op.Records)
		}
		if len(tiers) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&tiers).Error

	case op.Action == ActionDelete && op.Entity == EntityProductPrice:
		ids, ok := op.Records.([]string)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", op.Records)
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Delete(&catalog.ProductPrice{}, "id IN ?", ids).Error

	default:
		return fmt.Errorf("unsupported operation %s %s", op.Action, op.Entity)
	}
}
