package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/clock"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/craving"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/profile"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/tui/components/buddies"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestContext(t *testing.T, onboard bool) (*cli.Context, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(t0)
	ctx := cli.NewContext(storage.NewMemoryStore(), clk, time.UTC)
	ctx.Notifier = nil
	if onboard {
		_, err := ctx.Profile.Complete(&profile.Draft{
			Addiction: "gaming",
			QuitGoal:  models.QuitGoalStop,
			Triggers:  []string{"boredom"},
			Privacy:   models.PrivacyAnonymous,
		}, ctx.Streaks)
		require.NoError(t, err)
	}
	return ctx, clk
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestNewModelStartsInOnboarding(t *testing.T) {
	ctx, _ := newTestContext(t, false)
	m := NewModel(ctx)
	assert.Equal(t, constants.StateOnboarding, m.state)
	assert.NotNil(t, m.form)

	m = send(t, m, esc)
	assert.Equal(t, constants.StateDashboard, m.state)
}

func TestNewModelDashboard(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)
	require.Equal(t, constants.StateDashboard, m.state)

	d := m.dashboard.Data()
	assert.True(t, d.HasStreak)
	assert.Equal(t, "Gaming", d.Label)
	assert.Equal(t, 0, d.Record.CurrentStreak)
	assert.NotEmpty(t, d.Message)
	assert.Contains(t, m.View(), "0 days")
}

func TestTabsCycle(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateLessons, m.state)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateBuddies, m.state)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, constants.StateDashboard, m.state)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, constants.StateBuddies, m.state)
}

func TestLessonsCategoryFilter(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)
	all := m.lessons.Len()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, runes("f"))
	assert.NotEmpty(t, m.lessons.Category())
	assert.Less(t, m.lessons.Len(), all)
}

func TestResetConfirm(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)

	m = send(t, m, runes("r"))
	require.Equal(t, constants.StateConfirmReset, m.state)
	m = send(t, m, runes("n"))
	assert.Equal(t, constants.StateDashboard, m.state)
	rec, _ := ctx.Streaks.Load("gaming")
	assert.Equal(t, 0, rec.TotalRelapses)

	m = send(t, m, runes("r"))
	m = send(t, m, runes("y"))
	assert.Equal(t, constants.StateDashboard, m.state)
	rec, _ = ctx.Streaks.Load("gaming")
	assert.Equal(t, 1, rec.TotalRelapses)
	last, ok := rec.LastEntry()
	require.True(t, ok)
	assert.Equal(t, models.HistoryRelapse, last.Kind)
	assert.Contains(t, last.Note, constants.ManualResetTrigger)
}

func TestResetStartsMissingStreak(t *testing.T) {
	ctx, _ := newTestContext(t, false)
	m := NewModel(ctx)
	m = send(t, m, esc)
	require.False(t, m.dashboard.Data().HasStreak)

	m = send(t, m, runes("r"))
	assert.Equal(t, constants.StateDashboard, m.state)
	assert.True(t, m.dashboard.Data().HasStreak)
	_, ok := ctx.Streaks.Load(constants.DefaultAddictionType)
	assert.True(t, ok)
}

func TestRelapseFormSubmit(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)

	m = send(t, m, runes("l"))
	require.Equal(t, constants.StateRelapse, m.state)

	m.relapseForm.Trigger = "stress"
	m.relapseForm.Feeling = "  low "
	require.NoError(t, m.submitForm())

	rec, _ := ctx.Streaks.Load("gaming")
	last, _ := rec.LastEntry()
	assert.Equal(t, "Trigger: Stress. Feeling: low", last.Note)
}

func TestBuddyFormAndRemove(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewModel(ctx)

	m = send(t, m, buddies.AddBuddyMsg{})
	require.Equal(t, constants.StateAddBuddy, m.state)
	m.buddyForm.Name = "Sam"
	m.buddyForm.Phone = "555-0100"
	require.NoError(t, m.submitForm())
	assert.True(t, ctx.Profile.Load().HasAccountabilityBuddy)

	m.buddyForm = &BuddyFormModel{Name: " "}
	assert.Error(t, m.submitForm())

	all := ctx.Buddies.All()
	require.Len(t, all, 1)
	m = send(t, m, buddies.RemoveBuddyMsg{ID: all[0].ID})
	assert.Empty(t, ctx.Buddies.All())
	assert.False(t, ctx.Profile.Load().HasAccountabilityBuddy)
	assert.Equal(t, 0, m.buddies.Len())
}

func TestCravingFlow(t *testing.T) {
	ctx, clk := newTestContext(t, true)
	m := NewModel(ctx)

	m = send(t, m, runes("c"))
	require.Equal(t, constants.StateCraving, m.state)
	assert.Equal(t, 30, m.craving.snap.Remaining)

	m = send(t, m, enter)
	assert.Contains(t, m.craving.status, "Keep breathing")

	clk.Advance(30 * time.Second)
	m = send(t, m, enter)
	require.Equal(t, craving.PhaseGrounding, m.craving.snap.Phase)

	for i := 0; i < constants.GroundingSteps; i++ {
		m = send(t, m, enter)
	}
	require.Equal(t, craving.PhaseJournal, m.craving.snap.Phase)

	m = send(t, m, runes("tired"))
	m = send(t, m, ctrlS)
	require.Equal(t, craving.PhaseActions, m.craving.snap.Phase)

	m = send(t, m, enter)
	require.True(t, m.craving.finished())

	history := ctx.Cravings.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Overcame)
	assert.Equal(t, "tired", history[0].Notes)
	assert.Equal(t, constants.DefaultCravingIntensity, history[0].Intensity)

	m = send(t, m, enter)
	assert.Equal(t, constants.StateDashboard, m.state)
	assert.False(t, m.craving.driver.Running())
	assert.Equal(t, 1, m.dashboard.Data().TodayOvercome)
}

func TestCravingEscDiscards(t *testing.T) {
	ctx, _ := newTestContext(t, true)
	m := NewCravingModel(ctx)
	m.Init()
	require.True(t, m.craving.driver.Running())

	next, cmd := m.Update(esc)
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.craving.driver.Running())
	assert.Empty(t, ctx.Cravings.History())
}
