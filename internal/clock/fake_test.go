// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestFake_NowStandsStill(t *testing.T) {
	c := Fake(epoch)
	assert.Equal(t, epoch, c.Now())
	assert.Equal(t, epoch, c.Now())
}

func TestFake_Advance(t *testing.T) {
	c := Fake(epoch)
	c.Advance(90 * time.Second)
	assert.Equal(t, epoch.Add(90*time.Second), c.Now())
}

func TestFake_Set(t *testing.T) {
	c := Fake(epoch)
	later := epoch.Add(24 * time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestFake_TickerFiresOnBoundary(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Advance(59 * time.Second)
	select {
	case <-ticker.C:
		t.Fatal("ticker fired before its interval elapsed")
	default:
	}

	c.Advance(time.Second)
	select {
	case tick := <-ticker.C:
		assert.Equal(t, epoch.Add(time.Minute), tick)
	default:
		t.Fatal("ticker did not fire")
	}
}

func TestFake_TickerDropsOverflow(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)
	defer ticker.Stop()

	c.Advance(5 * time.Second)

	require.Len(t, ticker.C, 1)
	<-ticker.C
	assert.Empty(t, ticker.C)
}

func TestFake_StoppedTickerIsSilent(t *testing.T) {
	c := Fake(epoch)
	ticker := c.NewTicker(time.Second)
	ticker.Stop()

	c.Advance(time.Minute)
	assert.Empty(t, ticker.C)
}

func TestFake_WaitForTickers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		c.WaitForTickers(1)
		close(done)
	}()

	ticker := c.NewTicker(time.Second)
	defer ticker.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForTickers did not return")
	}
}

func TestFake_NewTickerPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { Fake(epoch).NewTicker(0) })
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	now := Real().Now()
	assert.False(t, now.Before(before))
}
