package clock_test

import (
	"testing"
	"time"

	"orderboard/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := clock.NewSystem().Now()

	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.Equal(t, time.UTC, now.Location())
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.True(t, c.Now().Equal(start))

	c.Advance(1500 * time.Millisecond)

	assert.True(t, c.Now().Equal(start.Add(1500*time.Millisecond)))
}
