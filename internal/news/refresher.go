// Medley - Cross-Domain Entertainment Aggregation Service
// Copyright 2026 Medley Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/medleyhq/medley

package news

import (
	"context"
	"time"

	"github.com/medleyhq/medley/internal/logging"
)

// Refresher periodically reruns the full news refresh cycle. It
// implements suture.Service: Serve blocks until ctx is canceled and a
// refresh failure does not return an error (the next tick retries), so
// the supervisor never needs to restart it for transient upstream
// trouble.
type Refresher struct {
	fetcher  *Fetcher
	interval time.Duration
}

// NewRefresher creates a refresher ticking at interval.
func NewRefresher(fetcher *Fetcher, interval time.Duration) *Refresher {
	return &Refresher{fetcher: fetcher, interval: interval}
}

// Serve implements suture.Service. An immediate refresh runs on start,
// then one per interval.
func (r *Refresher) Serve(ctx context.Context) error {
	if err := r.fetcher.RefreshAll(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn().Err(err).Msg("Initial news refresh incomplete")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.fetcher.RefreshAll(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn().Err(err).Msg("News refresh incomplete")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (r *Refresher) String() string {
	return "news-refresher"
}
