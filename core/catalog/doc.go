// Package catalog defines the persisted catalog model and the batched
// lookups shared by the price and stock update paths.
//
// It contains three layers:
//
//  1. Value types (Money, PriceSet) with structural equality. Prices are
//     stored as JSON documents keyed by currency id, so comparison is a
//     pure function over the decoded values and never touches the store.
//
//  2. GORM entities (Currency, Product, ProductPrice). Products are
//     versioned: the live partition is identified by LiveVersion, and
//     variants inherit closeout/min-purchase settings from their parent.
//
//  3. Batched lookups. Both update paths resolve product numbers and load
//     snapshots with exactly one query per concern, regardless of batch
//     size. Keys without a matching row are simply absent from the
//     returned maps.
package catalog
