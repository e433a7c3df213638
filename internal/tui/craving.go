package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/craving"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
)

const coldWaterHint = "Splash cold water on your face or hold an ice cube for 30 seconds."

// snapshotMsg carries a driver update. ch identifies the run that produced
// it so updates from a previous run are ignored.
type snapshotMsg struct {
	ch   <-chan craving.Snapshot
	snap craving.Snapshot
}

type breathingEndedMsg struct {
	ch <-chan craving.Snapshot
}

func waitForSnapshot(ch <-chan craving.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return breathingEndedMsg{ch: ch}
		}
		return snapshotMsg{ch: ch, snap: snap}
	}
}

// cravingView is the intervention screen. It is shared by pointer between
// copies of the Model so the session callback can record its result.
type cravingView struct {
	ctx     *cli.Context
	session *craving.Session
	driver  *craving.Driver
	updates <-chan craving.Snapshot
	snap    craving.Snapshot
	journal textarea.Model
	actions []craving.Action
	cursor  int // 0 is "I rode the wave", then one row per action
	status  string
	entry   *models.CravingEntry
}

func newCravingView(ctx *cli.Context) *cravingView {
	v := &cravingView{ctx: ctx}
	v.session = craving.NewSession(func(o craving.Outcome) {
		e := ctx.Recorder.Complete(ctx.Profile.PrimaryAddictionType(), constants.DefaultCravingIntensity, o)
		v.entry = &e
		logger.Debug("Craving session completed", "id", e.ID, "overcame", e.Overcame)
	})
	v.driver = craving.NewDriver(v.session, ctx.Clock)

	ta := textarea.New()
	ta.Placeholder = "What is going on right now? What do you really need?"
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	v.journal = ta
	return v
}

// open starts a fresh session and its breathing tickers.
func (v *cravingView) open() tea.Cmd {
	v.driver.Stop()
	v.snap = v.session.Open(v.ctx.Clock.Now())
	v.actions = craving.Actions(v.ctx.Buddies.All())
	v.cursor = 0
	v.status = ""
	v.entry = nil
	v.journal.Reset()
	v.journal.Blur()
	v.updates = v.driver.Start(context.Background())
	return waitForSnapshot(v.updates)
}

// close discards an unfinished session and stops the tickers.
func (v *cravingView) close() {
	v.driver.Stop()
	v.session.Close()
	v.journal.Blur()
}

func (v *cravingView) finished() bool {
	return v.snap.Finished
}

func (v *cravingView) handleSnapshot(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case snapshotMsg:
		if msg.ch != v.updates {
			return nil
		}
		v.snap = msg.snap
		return waitForSnapshot(v.updates)
	case breathingEndedMsg:
		if msg.ch == v.updates {
			v.snap = v.session.Snapshot()
		}
	}
	return nil
}

func (v *cravingView) update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	v.status = ""
	switch v.snap.Phase {
	case craving.PhaseJournal:
		return v.updateJournal(msg, keys)
	case craving.PhaseActions:
		return v.updateActions(msg, keys)
	}

	if key.Matches(msg, keys.Enter) {
		v.advance()
	}
	return nil
}

func (v *cravingView) advance() {
	snap, err := v.session.Advance(v.ctx.Clock.Now())
	v.snap = snap
	switch {
	case errors.Is(err, craving.ErrBreathingInProgress):
		v.status = fmt.Sprintf("Keep breathing, %ds to go.", snap.Remaining)
	case err != nil:
		logger.Debug("Craving advance rejected", "error", err)
	case snap.Phase == craving.PhaseJournal:
		v.journal.Focus()
	}
}

func (v *cravingView) updateJournal(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	var (
		snap craving.Snapshot
		err  error
	)
	switch {
	case key.Matches(msg, keys.Continue):
		_ = v.session.SetJournal(strings.TrimSpace(v.journal.Value()))
		snap, err = v.session.Continue()
	case key.Matches(msg, keys.Skip):
		snap, err = v.session.Skip()
	default:
		var cmd tea.Cmd
		v.journal, cmd = v.journal.Update(msg)
		if err := v.session.SetJournal(v.journal.Value()); err != nil {
			logger.Debug("Journal update rejected", "error", err)
		}
		return cmd
	}

	if err != nil {
		logger.Debug("Leaving journal rejected", "error", err)
		return nil
	}
	v.snap = snap
	v.journal.Blur()
	return nil
}

func (v *cravingView) updateActions(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, keys.Down):
		if v.cursor < len(v.actions) {
			v.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if v.cursor == 0 {
			snap, err := v.session.RideWave()
			if err != nil {
				logger.Debug("Ride wave rejected", "error", err)
				return nil
			}
			v.snap = snap
			return nil
		}
		a := v.actions[v.cursor-1]
		switch {
		case !a.Enabled:
			v.status = "Add a buddy from the Buddies tab first."
		case a.Kind == craving.ActionColdWater:
			v.status = coldWaterHint
		default:
			v.status = a.Target
		}
	}
	return nil
}

func (v *cravingView) view(width, height int) string {
	var body string
	switch {
	case v.snap.Finished:
		body = v.viewFinished()
	case v.snap.Phase == craving.PhaseBreathing:
		body = v.viewBreathing()
	case v.snap.Phase == craving.PhaseGrounding:
		g := v.snap.Grounding()
		body = lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render(fmt.Sprintf("Grounding %d of %d", v.snap.Step+1, constants.GroundingSteps)),
			promptStyle.Render(fmt.Sprintf("Name %d %s", g.Count, g.Sense)),
			mutedStyle.Render("enter when done"),
		)
	case v.snap.Phase == craving.PhaseJournal:
		body = lipgloss.JoinVertical(lipgloss.Left,
			"Write it down. The urge will pass.",
			"",
			v.journal.View(),
			"",
			mutedStyle.Render("ctrl+s save and continue · ctrl+n skip"),
		)
	case v.snap.Phase == craving.PhaseActions:
		body = v.viewActions()
	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			promptStyle.Render("You made it through."),
			mutedStyle.Render("enter to finish"),
		)
	}

	if v.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", warningStyle.Render(v.status))
	}
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (v *cravingView) viewBreathing() string {
	hint := fmt.Sprintf("%ds", v.snap.Remaining)
	if v.snap.CanAdvance() {
		hint = "enter to continue"
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render("Breathe with the rhythm: 4 in, 4 hold, 6 out"),
		promptStyle.Render(v.snap.Breath.String()),
		mutedStyle.Render(hint),
	)
}

func (v *cravingView) viewActions() string {
	rows := []string{"Reset your body before you go back:", ""}
	labels := []string{"I rode the wave"}
	for _, a := range v.actions {
		labels = append(labels, a.Label)
	}
	for i, l := range labels {
		if i == v.cursor {
			rows = append(rows, selectedStyle.Render("> "+l))
			continue
		}
		rows = append(rows, "  "+l)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *cravingView) viewFinished() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render("You rode the wave. 🌊"),
		mutedStyle.Render("The craving has been logged as overcome."),
		mutedStyle.Render("enter or esc to return"),
	)
}
