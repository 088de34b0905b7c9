// Package reconcile provides the operation log shared by the update
// features and the sync facility that applies it.
//
// Reconcilers never write to the store directly. They diff submitted
// state against a snapshot and append Operations (tagged upserts and
// deletes) to an ordered log; Apply then executes the whole log inside
// one transaction. Tier identity keys are disjoint between the delete
// and upsert sets by construction, so the relative order of the two
// cannot affect the outcome.
package reconcile
