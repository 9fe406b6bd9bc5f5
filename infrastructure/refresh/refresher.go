// Package refresh Ticker-owned cache refreshing. Each Refresher re-runs
// one fetch on a fixed cadence until its context is cancelled, replacing
// the ambient client-side polling the site used to do.
package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/krishivishwa/storefront/pkg/logger"
)

// Refresher periodically runs a named fetch function.
type Refresher struct {
	name     string
	interval time.Duration
	fetch    func(ctx context.Context) error
}

// NewRefresher Create a refresher. The fetch runs once immediately on
// Run, then on every tick.
func NewRefresher(name string, interval time.Duration, fetch func(ctx context.Context) error) *Refresher {
	return &Refresher{name: name, interval: interval, fetch: fetch}
}

// Run blocks until ctx is cancelled. Fetch failures are logged and the
// ticker keeps going; the cache serves its previous contents meanwhile.
func (r *Refresher) Run(ctx context.Context) error {
	if err := r.fetch(ctx); err != nil {
		logger.Warn("initial refresh failed",
			zap.String("refresher", r.name),
			zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("refresher stopped", zap.String("refresher", r.name))
			return ctx.Err()
		case <-ticker.C:
			if err := r.fetch(ctx); err != nil {
				logger.Warn("refresh failed",
					zap.String("refresher", r.name),
					zap.Error(err))
			}
		}
	}
}
