// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts the time source used by token issuance,
// verification and background pruning so tests can drive time explicitly.
//
// Production code injects [Real]; tests inject [Fake] and move time forward
// with [FakeClock.Advance].
package clock

import "time"

// Clock is the time source consumed by services and workers.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTicker returns a Ticker that delivers ticks on its C channel at the
	// given interval. Panics if d <= 0.
	NewTicker(d time.Duration) *Ticker
}

// Ticker wraps a periodic timer. The C channel has capacity 1: if the
// consumer falls behind, ticks are dropped rather than queued.
type Ticker struct {
	// C delivers ticks.
	C <-chan time.Time

	stopFunc func()
}

// Stop turns off the ticker. Stop does not close C.
func (t *Ticker) Stop() { t.stopFunc() }
