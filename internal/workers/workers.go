// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the workers enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.Workers, clk clock.Clock, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.BlacklistPruneInterval > 0 {
		w.workers = append(w.workers,
			NewBlacklistPruner(storages.BlacklistRepository, cfg.BlacklistPruneInterval, cfg.BlacklistRetention, clk, logger))
	}

	return w
}

// Run starts every worker and waits for all of them. The first failing
// worker cancels the others and its error is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		worker := worker // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")

			err := worker.Run(gctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}

			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}

// Len reports how many workers are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}
