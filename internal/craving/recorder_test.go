package craving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/streak"
)

func newRecorder(t *testing.T) (*Recorder, *Log, *streak.Tracker, *clock.Fake) {
	t.Helper()
	store := storage.NewMemoryStore()
	clk := clock.NewFake(t0)
	tracker := streak.NewTracker(store, clk)
	log := NewLog(store, clk)
	return NewRecorder(log, tracker), log, tracker, clk
}

func TestCompleteOvercameLogsOnly(t *testing.T) {
	r, log, tracker, clk := newRecorder(t)
	tracker.Start("default")
	clk.Set(t0.AddDate(0, 0, 3))

	entry := r.Complete("default", 5, Outcome{Overcame: true, Notes: "breathed through it"})
	assert.True(t, entry.Overcame)
	assert.Equal(t, 5, entry.Intensity)
	assert.Len(t, log.History(), 1)

	rec, ok := tracker.Load("default")
	require.True(t, ok)
	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, 0, rec.TotalRelapses)
}

func TestCompleteNotOvercameRecordsRelapse(t *testing.T) {
	r, _, tracker, clk := newRecorder(t)
	tracker.Start("default")
	clk.Set(t0.AddDate(0, 0, 3))

	r.Complete("default", 5, Outcome{Overcame: false, Notes: "lonely"})

	rec, ok := tracker.Load("default")
	require.True(t, ok)
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Equal(t, 3, rec.BestStreak)
	assert.Equal(t, 1, rec.TotalRelapses)
	last, _ := rec.LastEntry()
	assert.Equal(t, "Trigger: lonely. Feeling: Not specified", last.Note)
}

func TestSessionCallbackDrivesRecorder(t *testing.T) {
	r, log, tracker, _ := newRecorder(t)
	tracker.Start("default")

	s := NewSession(func(o Outcome) { r.Complete("default", 5, o) })
	s.Open(t0)
	s.Tick(t0.Add(30 * time.Second))
	for s.Snapshot().Phase != PhaseActions {
		_, err := s.Advance(t0.Add(30 * time.Second))
		require.NoError(t, err)
	}
	_, err := s.RideWave()
	require.NoError(t, err)

	history := log.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Overcame)
	assert.Empty(t, history[0].Notes)
}

func TestClosedSessionRecordsNothing(t *testing.T) {
	r, log, tracker, _ := newRecorder(t)
	tracker.Start("default")

	s := NewSession(func(o Outcome) { r.Complete("default", 5, o) })
	s.Open(t0)
	s.Tick(t0.Add(30 * time.Second))
	_, err := s.Advance(t0.Add(30 * time.Second))
	require.NoError(t, err)
	s.Close()

	assert.Empty(t, log.History())
	rec, _ := tracker.Load("default")
	assert.Equal(t, 0, rec.TotalRelapses)
}

func TestResetUsesManualTrigger(t *testing.T) {
	r, _, tracker, _ := newRecorder(t)

	_, ok := r.Reset("default")
	assert.False(t, ok, "no streak to reset")

	tracker.Start("default")
	rec, ok := r.Reset("default")
	require.True(t, ok)
	last, _ := rec.LastEntry()
	assert.Equal(t, models.HistoryRelapse, last.Kind)
	assert.Equal(t, "Trigger: Manual Reset. Feeling: Not specified", last.Note)
}

func TestRecordManualEntry(t *testing.T) {
	r, log, tracker, clk := newRecorder(t)
	tracker.Start("default")
	clk.Set(t0.AddDate(0, 0, 2))

	r.Record("default", models.CravingEntry{Intensity: 8, Trigger: "stress", Overcame: true})
	rec, _ := tracker.Load("default")
	assert.Equal(t, 0, rec.TotalRelapses)

	r.Record("default", models.CravingEntry{Intensity: 6, Trigger: "boredom", Notes: "restless"})
	rec, _ = tracker.Load("default")
	assert.Equal(t, 1, rec.TotalRelapses)
	last, _ := rec.LastEntry()
	assert.Equal(t, "Trigger: boredom. Feeling: restless", last.Note)
	assert.Len(t, log.History(), 2)
}
