package clock_test

import (
	"testing"
	"time"

	"hris-backoffice/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	other := time.Date(2026, 3, 3, 17, 0, 0, 0, time.UTC)
	c.Set(other)
	assert.Equal(t, other, c.Now())
}

func TestRealClockMovesForward(t *testing.T) {
	c := clock.New()
	first := c.Now()
	assert.False(t, c.Now().Before(first))
}
