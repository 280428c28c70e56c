// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clock

import (
	"sync"
	"time"
)

// FakeClock is a deterministic Clock. Time stands still until Advance or Set
// is called. It is safe for concurrent use.
type FakeClock struct {
	mu             sync.Mutex
	current        time.Time
	tickers        []*fakeTicker
	tickersChanged *sync.Cond
}

type fakeTicker struct {
	deadline time.Time
	interval time.Duration
	channel  chan time.Time
	stopped  bool
}

// Fake returns a FakeClock initialized to the given time.
func Fake(initial time.Time) *FakeClock {
	c := &FakeClock{current: initial}
	c.tickersChanged = sync.NewCond(&c.mu)
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// NewTicker registers a ticker that fires when the clock is advanced past
// each interval boundary.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTicker{
		deadline: c.current.Add(d),
		interval: d,
		channel:  make(chan time.Time, 1),
	}
	c.tickers = append(c.tickers, t)
	c.tickersChanged.Broadcast()

	return &Ticker{
		C: t.channel,
		stopFunc: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			t.stopped = true
			c.tickersChanged.Broadcast()
		},
	}
}

// Advance moves the clock forward by d and fires every active ticker whose
// deadline falls within the new time. Sends never block.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(d)
	for _, t := range c.tickers {
		if t.stopped {
			continue
		}
		for !t.deadline.After(c.current) {
			select {
			case t.channel <- t.deadline:
			default:
			}
			t.deadline = t.deadline.Add(t.interval)
		}
	}
}

// Set moves the clock to t without firing tickers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// WaitForTickers blocks until at least n active tickers are registered.
// Tests use it to avoid advancing time before a worker has started.
func (c *FakeClock) WaitForTickers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.activeTickers() < n {
		c.tickersChanged.Wait()
	}
}

func (c *FakeClock) activeTickers() int {
	count := 0
	for _, t := range c.tickers {
		if !t.stopped {
			count++
		}
	}
	return count
}
