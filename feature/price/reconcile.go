package price

import (
	"github.com/google/uuid"

	"catalog-sync/core/catalog"
	"catalog-sync/core/reconcile"
)

// buildOperations diffs one resolved update against its snapshot and
// returns the operations needed to converge, possibly none.
func buildOperations(versionID string, item updateItem, snap catalog.PriceSnapshot) []reconcile.Operation {
	var ops []reconcile.Operation

	if item.price != nil && !item.price.Equal(snap.Price) {
		ops = append(ops, reconcile.Operation{
			Key:    "product-price-update",
			Action: reconcile.ActionUpsert,
			Entity: reconcile.EntityProduct,
			Records: []catalog.ProductPricePatch{{
				ID:        item.id,
				VersionID: versionID,
				Price:     item.price,
			}},
		})
	}

	if item.hasTiers {
		ops = append(ops, tierOperations(item.id, item.tiers, snap.Tiers)...)
	}

	return ops
}

// tierOperations computes the set difference between submitted and
// persisted tiers, keyed by tier identity. Absence from the submission
// is the deletion signal; there is no explicit delete flag. All deletes
// are batched into one operation and all creates/updates into another.
func tierOperations(productID string, submitted []tierUpdate, current []catalog.TierSnapshot) []reconcile.Operation {
	currentIndex := make(map[string]catalog.TierSnapshot, len(current))
	for _, tier := range current {
		currentIndex[catalog.TierKey(tier.RuleID, tier.QuantityStart, tier.QuantityEnd)] = tier
	}

	// Later duplicates of the same identity overwrite earlier ones.
	submittedIndex := make(map[string]tierUpdate, len(submitted))
	order := make([]string, 0, len(submitted))
	for _, tier := range submitted {
		key := catalog.TierKey(tier.ruleID, tier.quantityStart, tier.quantityEnd)
		if _, seen := submittedIndex[key]; !seen {
			order = append(order, key)
		}
		submittedIndex[key] = tier
	}

	var deleteIDs []string
	for _, tier := range current {
		key := catalog.TierKey(tier.RuleID, tier.QuantityStart, tier.QuantityEnd)
		if _, ok := submittedIndex[key]; !ok {
			deleteIDs = append(deleteIDs, tier.ID)
		}
	}

	var upserts []catalog.ProductPrice
	for _, key := range order {
		tier := submittedIndex[key]

		existing, ok := currentIndex[key]
		if ok && tierEqual(tier, existing) {
			continue
		}

		id := uuid.NewString()
		if ok {
			// Changed tier keeps its storage identity.
			id = existing.ID
		}

		upserts = append(upserts, catalog.ProductPrice{
			ID:            id,
			ProductID:     productID,
			RuleID:        tier.ruleID,
			QuantityStart: tier.quantityStart,
			QuantityEnd:   tier.quantityEnd,
			Price:         tier.price,
		})
	}

	var ops []reconcile.Operation
	if len(deleteIDs) > 0 {
		ops = append(ops, reconcile.Operation{
			Key:     "product-price-delete",
			Action:  reconcile.ActionDelete,
			Entity:  reconcile.EntityProductPrice,
			Records: deleteIDs,
		})
	}
	if len(upserts) > 0 {
		ops = append(ops, reconcile.Operation{
			Key:     "product-price-upsert",
			Action:  reconcile.ActionUpsert,
			Entity:  reconcile.EntityProductPrice,
			Records: upserts,
		})
	}
	return ops
}

// tierEqual compares the diffable fields of a submitted tier with a
// persisted one: rule id, quantity bounds and the full price set. The
// storage id never participates.
func tierEqual(submitted tierUpdate, current catalog.TierSnapshot) bool {
	if submitted.ruleID != current.RuleID {
		return false
	}
	if submitted.quantityStart != current.QuantityStart {
		return false
	}
	if !intPtrEqual(submitted.quantityEnd, current.QuantityEnd) {
		return false
	}
	return submitted.price.Equal(current.Price)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
