package craving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
)

func TestAppendAssignsIdentity(t *testing.T) {
	clk := clock.NewFake(t0)
	l := NewLog(storage.NewMemoryStore(), clk)

	a := l.Append(models.CravingEntry{Intensity: 5, Overcame: true})
	b := l.Append(models.CravingEntry{Intensity: 14, Overcame: false, Notes: "rough night"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "2024-03-01T09:00:00Z", a.Timestamp)
	assert.Equal(t, 10, b.Intensity, "intensity clamped")

	history := l.History()
	require.Len(t, history, 2)
	assert.Equal(t, a.ID, history[0].ID)
	assert.Equal(t, "rough night", history[1].Notes)
}

func TestToday(t *testing.T) {
	clk := clock.NewFake(t0.AddDate(0, 0, -1))
	l := NewLog(storage.NewMemoryStore(), clk)
	l.Append(models.CravingEntry{Intensity: 3, Overcame: true})

	clk.Set(t0)
	l.Append(models.CravingEntry{Intensity: 4, Overcame: true})
	l.Append(models.CravingEntry{Intensity: 6, Overcame: false})

	today := l.Today()
	assert.Len(t, today, 2)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.CravingEntry
		want    models.CravingStats
	}{
		{"empty", nil, models.CravingStats{}},
		{
			"rounded",
			[]models.CravingEntry{
				{Intensity: 5, Overcame: true},
				{Intensity: 6, Overcame: true},
				{Intensity: 8, Overcame: false},
			},
			models.CravingStats{Total: 3, Overcome: 2, SuccessRate: 67, AverageIntensity: 6.3},
		},
		{
			"all overcome",
			[]models.CravingEntry{{Intensity: 5, Overcame: true}, {Intensity: 5, Overcame: true}},
			models.CravingStats{Total: 2, Overcome: 2, SuccessRate: 100, AverageIntensity: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.entries))
		})
	}
}

func TestCorruptLogIsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(constants.KeyCravingLog, "[{oops"))

	l := NewLog(store, clock.NewFake(t0))
	assert.Empty(t, l.History())
	assert.Equal(t, 0, l.Stats().Total)

	l.Append(models.CravingEntry{Intensity: 5, Overcame: true})
	assert.Len(t, l.History(), 1)
}

func TestTodayHonoursLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 02:00 UTC on March 2 is still March 1 in New York.
	clk := clock.NewFake(time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC))
	l := NewLog(storage.NewMemoryStore(), clk, WithLogLocation(ny))
	l.Append(models.CravingEntry{Intensity: 5, Overcame: true})

	clk.Set(time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC))
	assert.Len(t, l.Today(), 1)
}
