package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAndCurrentMilestone(t *testing.T) {
	tests := []struct {
		current     int
		next        int
		currentDays int
		hasCurrent  bool
	}{
		{0, 1, 0, false},
		{1, 3, 1, true},
		{2, 3, 1, true},
		{7, 14, 7, true},
		{200, 365, 180, true},
		{365, 365, 365, true},
		{500, 365, 365, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, NextMilestone(tt.current).Days, "next for %d", tt.current)
		m, ok := CurrentMilestone(tt.current)
		assert.Equal(t, tt.hasCurrent, ok, "has current for %d", tt.current)
		assert.Equal(t, tt.currentDays, m.Days, "current for %d", tt.current)
	}
}

func TestProgressToNext(t *testing.T) {
	assert.Equal(t, 0.0, ProgressToNext(0))
	assert.Equal(t, 50.0, ProgressToNext(2))
	assert.InDelta(t, 42.857, ProgressToNext(10), 0.001)
	assert.Equal(t, 100.0, ProgressToNext(365))
	assert.Equal(t, 100.0, ProgressToNext(1000))
}

func TestDaysUntilNext(t *testing.T) {
	assert.Equal(t, 1, DaysUntilNext(0))
	assert.Equal(t, 4, DaysUntilNext(10))
	assert.Equal(t, 0, DaysUntilNext(365))
}

func TestSavings(t *testing.T) {
	assert.Equal(t, "0m", TimeSaved(0))
	assert.Equal(t, "50m", TimeSaved(1))
	assert.Equal(t, "1h", TimeSaved(2))
	assert.Equal(t, "5h", TimeSaved(7))

	assert.Equal(t, "", MoneySaved(0))
	assert.Equal(t, "$70", MoneySaved(7))
}
