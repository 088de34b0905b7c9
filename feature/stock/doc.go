// Package stock implements transactional bulk stock reconciliation.
//
// Each batch resolves identifiers, loads one availability snapshot
// (stock, availability, closeout and min-purchase with parent fallback),
// then applies every changed item inside one transaction: stock and the
// recomputed availability flag are written together. Items whose
// submitted stock equals the current stock are skipped entirely.
//
// Availability follows the closeout rule: a closeout product is
// available while its stock covers the minimum purchase quantity; any
// other product stays available regardless of stock.
//
// After the transaction commits, the notifier receives the classified
// transitions: one no-longer-available notification and one
// cache-invalidation covering both regained availability and upward
// threshold crossings. Dispatch is deliberately outside the transaction,
// so it is at-least-once relative to the committed write.
package stock
