package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/tui/components/buddies"
)

const tabCount = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dashboard.SetSize(msg.Width, msg.Height-4)
		m.lessons.SetSize(msg.Width-4, msg.Height-6)
		m.buddies.SetSize(msg.Width-4, msg.Height-6)
		if m.form != nil {
			m.form = m.form.WithWidth(min(msg.Width, 80))
		}
		return m, nil

	case storeChangedMsg:
		if err := m.ctx.Store.Load(); err != nil {
			logger.Warn("Failed to reload storage", "error", err)
		} else {
			m.refresh()
		}
		return m, waitForReload(m.reloads)

	case milestoneMsg:
		m.banner = msg.text
		m.refresh()
		return m, nil

	case snapshotMsg, breathingEndedMsg:
		return m, m.craving.handleSnapshot(msg)

	case buddies.AddBuddyMsg:
		m.buddyForm = &BuddyFormModel{}
		m.form = NewBuddyForm(m.buddyForm)
		m.formError = ""
		m.previousState = m.state
		m.state = constants.StateAddBuddy
		return m, m.form.Init()

	case buddies.RemoveBuddyMsg:
		if m.ctx.Buddies.Remove(msg.ID) && len(m.ctx.Buddies.All()) == 0 {
			m.ctx.Profile.Save(func(p *models.Profile) { p.HasAccountabilityBuddy = false })
		}
		m.refresh()
		return m, nil
	}

	switch m.state {
	case constants.StateOnboarding, constants.StateAddBuddy, constants.StateRelapse:
		return m.updateForm(msg)
	case constants.StateCraving:
		return m.updateCraving(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateTab(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(keyMsg, m.keys.Craving):
		m.banner = ""
		m.previousState = m.state
		m.state = constants.StateCraving
		return m, m.craving.open()
	}

	if m.state == constants.StateDashboard {
		return m.updateDashboard(keyMsg)
	}
	return m.updateTab(msg)
}

func (m Model) updateTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateLessons:
		m.lessons, cmd = m.lessons.Update(msg)
	case constants.StateBuddies:
		m.buddies, cmd = m.buddies.Update(msg)
	}
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	addictionType := m.ctx.Profile.PrimaryAddictionType()
	_, hasStreak := m.ctx.Streaks.Load(addictionType)

	switch {
	case key.Matches(msg, m.keys.Reset):
		if !hasStreak {
			m.ctx.Streaks.Start(addictionType)
			m.banner = "Streak started. Day one begins now."
			m.refresh()
			return m, nil
		}
		m.previousState = m.state
		m.state = constants.StateConfirmReset
	case key.Matches(msg, m.keys.Relapse):
		if !hasStreak {
			return m, nil
		}
		m.relapseForm = &RelapseFormModel{}
		m.form = NewRelapseForm(m.relapseForm)
		m.formError = ""
		m.previousState = m.state
		m.state = constants.StateRelapse
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		if _, ok := m.ctx.Recorder.Reset(m.ctx.Profile.PrimaryAddictionType()); ok {
			m.banner = "Streak reset. Every day is a new start."
		}
		m.refresh()
		m.state = constants.StateDashboard
	case "n", "N", "esc":
		m.state = constants.StateDashboard
	}
	return m, nil
}

func (m Model) updateCraving(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.shutdown()
		return m, tea.Quit
	}

	done := key.Matches(keyMsg, m.keys.Back) ||
		(m.craving.finished() && key.Matches(keyMsg, m.keys.Enter))
	if !done {
		return m, m.craving.update(keyMsg, m.keys)
	}

	finished := m.craving.finished()
	m.craving.close()
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}

	m.state = constants.StateDashboard
	m.refresh()
	if finished {
		return m, m.celebrate()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = m.returnState()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.formError = ""
		m.refresh()
		m.state = m.returnState()
		if m.state == constants.StateDashboard {
			cmds = append(cmds, m.celebrate())
		}
	case huh.StateAborted:
		m.formError = ""
		m.state = m.returnState()
	}
	return m, tea.Batch(cmds...)
}

// returnState is where a form goes once it is completed or abandoned.
func (m Model) returnState() constants.SessionState {
	if m.state == constants.StateAddBuddy {
		return constants.StateBuddies
	}
	return constants.StateDashboard
}

func (m *Model) submitForm() error {
	addictionType := m.ctx.Profile.PrimaryAddictionType()

	switch m.state {
	case constants.StateOnboarding:
		p, err := m.ctx.Profile.Complete(m.draft, m.ctx.Streaks)
		if err != nil {
			return err
		}
		m.banner = fmt.Sprintf("Welcome, %s.", p.AnonymousName)
	case constants.StateAddBuddy:
		b, err := m.ctx.Buddies.Add(m.buddyForm.Name, m.buddyForm.Phone)
		if err != nil {
			return err
		}
		m.ctx.Profile.Save(func(p *models.Profile) { p.HasAccountabilityBuddy = true })
		m.banner = fmt.Sprintf("%s added as a buddy.", b.Name)
	case constants.StateRelapse:
		trigger := content.Default().TriggerLabel(m.relapseForm.Trigger)
		feeling := strings.TrimSpace(m.relapseForm.Feeling)
		if _, ok := m.ctx.Streaks.RecordRelapse(addictionType, trigger, feeling); !ok {
			return fmt.Errorf("no streak to reset")
		}
		m.banner = "Relapse logged. Be kind to yourself, day one starts now."
	}
	return nil
}
