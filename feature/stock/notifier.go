package stock

import (
	"context"

	"go.uber.org/zap"
)

// Notifier receives availability transitions after the stock transaction
// has committed. Implementations bridge to whatever transport delivers
// the events; the reconciliation core only guarantees that each call
// carries a non-empty id list.
type Notifier interface {
	// ProductsNoLongerAvailable announces products that dropped out of
	// availability in this batch.
	ProductsNoLongerAvailable(ctx context.Context, ids []string)

	// InvalidateProductCache requests cache invalidation for products
	// that regained availability or crossed a stock threshold upward.
	InvalidateProductCache(ctx context.Context, ids []string)
}

// LogNotifier emits the transitions as structured log events. It is the
// default wiring when no external event transport is configured.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// ProductsNoLongerAvailable implements Notifier.
func (n *LogNotifier) ProductsNoLongerAvailable(_ context.Context, ids []string) {
	n.logger.Info("Products no longer available",
		zap.Int("count", len(ids)),
		zap.Strings("ids", ids))
}

// InvalidateProductCache implements Notifier.
func (n *LogNotifier) InvalidateProductCache(_ context.Context, ids []string) {
	n.logger.Info("Product cache invalidation requested",
		zap.Int("count", len(ids)),
		zap.Strings("ids", ids))
}
