package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/reboot/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateCraving {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.craving.view(m.width, m.height-2),
			m.help.View(m),
		)
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.dashboard.View()
	case constants.StateLessons:
		content = docStyle.Render(m.lessons.View())
	case constants.StateBuddies:
		content = docStyle.Render(m.buddies.View())
	case constants.StateOnboarding, constants.StateAddBuddy, constants.StateRelapse:
		content = docStyle.Render(m.viewForm())
	case constants.StateConfirmReset:
		content = m.viewConfirmReset()
	}

	var banner string
	if m.banner != "" {
		banner = bannerStyle.Render(m.banner)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Lessons", "Buddies"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	if m.formError != "" {
		return lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), "", m.form.View())
	}
	return m.form.View()
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Reset your streak to day zero?"),
			warningStyle.Render("Your best streak and history are kept."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
