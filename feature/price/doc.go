// Package price implements bulk price reconciliation.
//
// A batch of submitted price updates is validated and normalized, product
// numbers are resolved to ids in one lookup, the current price state is
// loaded in one snapshot fetch, and each item is diffed against its
// snapshot. Only differences produce operations:
//
//   - a changed simple price yields one product upsert carrying the full
//     submitted price set (wholesale replace, not a per-currency patch);
//   - advanced price tiers are treated as a replace-by-full-set
//     collection keyed by tier identity: tiers missing from the
//     submission are deleted, new identities are created, changed ones
//     are updated in place, unchanged ones are left untouched.
//
// Items whose submitted state already matches the snapshot are reported
// as not updated ("No changes detected") without any write.
package price
