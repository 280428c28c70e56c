// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
)

var startedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBlacklistPruner_PruneUsesRetention(t *testing.T) {
	repo := mock.NewMockBlacklistRepository(gomock.NewController(t))
	clk := clock.Fake(startedAt)
	pruner := NewBlacklistPruner(repo, time.Hour, 24*time.Hour, clk, logger.Nop())

	ctx := context.Background()
	repo.EXPECT().DeleteExpired(ctx, startedAt.Add(-24*time.Hour)).Return(int64(3), nil)

	removed, err := pruner.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestBlacklistPruner_PruneFailure(t *testing.T) {
	repo := mock.NewMockBlacklistRepository(gomock.NewController(t))
	pruner := NewBlacklistPruner(repo, time.Hour, 0, clock.Fake(startedAt), logger.Nop())

	dbErr := errors.New("db is down")
	repo.EXPECT().DeleteExpired(gomock.Any(), startedAt).Return(int64(0), dbErr)

	_, err := pruner.Prune(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestBlacklistPruner_RunsOnEveryTick(t *testing.T) {
	repo := mock.NewMockBlacklistRepository(gomock.NewController(t))
	clk := clock.Fake(startedAt)
	pruner := NewBlacklistPruner(repo, time.Hour, 0, clk, logger.Nop())

	passes := make(chan time.Time, 2)
	repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, before time.Time) (int64, error) {
			passes <- before
			return 0, errors.New("transient")
		},
	).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pruner.Run(ctx) }()

	clk.WaitForTickers(1)

	clk.Advance(time.Hour)
	assert.Equal(t, startedAt.Add(time.Hour), receive(t, passes))

	clk.Advance(time.Hour)
	assert.Equal(t, startedAt.Add(2*time.Hour), receive(t, passes))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pruner did not stop")
	}
}

func receive(t *testing.T, ch <-chan time.Time) time.Time {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("no pruning pass")
		return time.Time{}
	}
}
