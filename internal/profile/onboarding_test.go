package profile

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

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepWelcome, d.Step)
	assert.Equal(t, models.QuitGoalStop, d.QuitGoal)
	assert.Equal(t, models.PrivacyAnonymous, d.Privacy)
}

func TestCanProceed(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		step  int
		want  bool
	}{
		{"welcome", Draft{}, StepWelcome, true},
		{"no addiction", Draft{}, StepAddiction, false},
		{"addiction chosen", Draft{Addiction: "gaming"}, StepAddiction, true},
		{"custom without name", Draft{Addiction: models.CustomAddictionID, CustomName: "  "}, StepAddiction, false},
		{"custom with name", Draft{Addiction: models.CustomAddictionID, CustomName: "Doomscrolling"}, StepAddiction, true},
		{"no goal", Draft{}, StepQuitGoal, false},
		{"goal", Draft{QuitGoal: models.QuitGoalReduce}, StepQuitGoal, true},
		{"no triggers", Draft{}, StepTriggers, false},
		{"trigger", Draft{Triggers: []string{"stress"}}, StepTriggers, true},
		{"no privacy", Draft{}, StepPrivacy, false},
		{"privacy", Draft{Privacy: models.PrivacyNamed}, StepPrivacy, true},
		{"ready", Draft{}, StepReady, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.CanProceed(tt.step))
		})
	}
}

func TestNextAndPrev(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.Next())
	assert.Equal(t, StepAddiction, d.Step)

	err := d.Next()
	assert.ErrorIs(t, err, ErrIncompleteStep)
	assert.Equal(t, StepAddiction, d.Step)

	d.Addiction = "gaming"
	require.NoError(t, d.Next())
	require.NoError(t, d.Next())
	d.ToggleTrigger("boredom")
	require.NoError(t, d.Next())
	require.NoError(t, d.Next())
	assert.Equal(t, StepReady, d.Step)
	require.NoError(t, d.Next())
	assert.Equal(t, StepReady, d.Step, "next stops at the last step")

	d.Prev()
	assert.Equal(t, StepPrivacy, d.Step)
	d.Step = StepWelcome
	d.Prev()
	assert.Equal(t, StepWelcome, d.Step)
}

func TestToggleTrigger(t *testing.T) {
	d := NewDraft()
	d.ToggleTrigger("stress")
	d.ToggleTrigger("boredom")
	assert.Equal(t, []string{"stress", "boredom"}, d.Triggers)

	d.ToggleTrigger("stress")
	assert.Equal(t, []string{"boredom"}, d.Triggers)
}

func TestCompleteStartsStreak(t *testing.T) {
	store := storage.NewMemoryStore()
	clk := clock.NewFake(d0)
	m := NewManager(store, clk)
	tracker := streak.NewTracker(store, clk)

	d := NewDraft()
	d.Addiction = "gaming"
	d.QuitGoal = models.QuitGoalReduce
	d.ToggleTrigger("boredom")
	d.Privacy = models.PrivacyNamed

	p, err := m.Complete(d, tracker)
	require.NoError(t, err)
	assert.True(t, p.HasCompletedOnboarding)
	assert.Equal(t, models.PrivacyNamed, p.PrivacyLevel)
	require.Len(t, p.Addictions, 1)
	assert.Equal(t, models.Addiction{
		Type:      "gaming",
		QuitGoal:  models.QuitGoalReduce,
		Triggers:  []string{"boredom"},
		StartDate: "2024-03-01",
	}, p.Addictions[0])

	rec, ok := tracker.Load("gaming")
	require.True(t, ok)
	assert.Equal(t, "2024-03-01", rec.StartDate)
	assert.Equal(t, 0, rec.CurrentStreak)
}

func TestCompleteCustomUsesName(t *testing.T) {
	store := storage.NewMemoryStore()
	clk := clock.NewFake(d0)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	m := NewManager(store, clk, WithLocation(tokyo))

	d := NewDraft()
	d.Addiction = models.CustomAddictionID
	d.CustomName = " Doomscrolling "
	d.ToggleTrigger("stress")

	p, err := m.Complete(d, streak.NewTracker(store, clk, streak.WithLocation(tokyo)))
	require.NoError(t, err)
	assert.Equal(t, "Doomscrolling", p.Addictions[0].Type)
	assert.Equal(t, "Doomscrolling", p.Addictions[0].CustomName)
	assert.Equal(t, "2024-03-01", p.Addictions[0].StartDate)
	assert.Equal(t, "Doomscrolling", m.PrimaryAddictionType())
}

func TestCompleteRejectsIncompleteDraft(t *testing.T) {
	store := storage.NewMemoryStore()
	clk := clock.NewFake(d0)
	m := NewManager(store, clk)

	d := NewDraft()
	d.Addiction = "gaming"

	_, err := m.Complete(d, streak.NewTracker(store, clk))
	assert.ErrorIs(t, err, ErrIncompleteStep)
	assert.False(t, m.Load().HasCompletedOnboarding)
}
