// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
)

// BlacklistPruner periodically deletes revoked tokens whose own expiry lies
// more than retention in the past. Such tokens already fail verification as
// expired, so removing them does not change any verification outcome.
type BlacklistPruner struct {
	blacklist store.BlacklistRepository
	interval  time.Duration
	retention time.Duration

	clock  clock.Clock
	logger *logger.Logger
}

func NewBlacklistPruner(blacklist store.BlacklistRepository, interval, retention time.Duration, clk clock.Clock, logger *logger.Logger) *BlacklistPruner {
	return &BlacklistPruner{
		blacklist: blacklist,
		interval:  interval,
		retention: retention,
		clock:     clk,
		logger:    logger,
	}
}

func (p *BlacklistPruner) Name() string {
	return "blacklist-pruner"
}

// Run prunes once per interval until ctx is done. A failed pass is logged
// and retried on the next tick.
func (p *BlacklistPruner) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.Prune(ctx); err != nil && ctx.Err() == nil {
				p.logger.Err(err).Msg("blacklist pruning failed")
			}
		}
	}
}

// Prune runs a single pass and reports how many entries were removed.
func (p *BlacklistPruner) Prune(ctx context.Context) (int64, error) {
	cutoff := p.clock.Now().UTC().Add(-p.retention)

	removed, err := p.blacklist.DeleteExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		p.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("pruned revoked tokens")
	}

	return removed, nil
}
