package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/reboot/internal/models"
	"github.com/julianstephens/reboot/internal/streak"
)

var (
	counterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(50).
			Align(lipgloss.Center)
)

// Data is everything the dashboard renders.
type Data struct {
	Label         string
	Record        models.StreakRecord
	HasStreak     bool
	TodayOvercome int
	Message       string
}

type Model struct {
	data     Data
	progress progress.Model
	width    int
	height   int
}

func New() Model {
	return Model{progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())}
}

func (m *Model) SetData(d Data) {
	m.data = d
}

func (m Model) Data() Data {
	return m.data
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.progress.Width = min(max(width-20, 10), 50)
}

func (m Model) View() string {
	var content string
	if !m.data.HasStreak {
		content = lipgloss.JoinVertical(lipgloss.Center,
			counterStyle.Render("No streak yet."),
			labelStyle.Render("Press 'r' to start one today."),
		)
	} else {
		content = m.viewStreak()
	}

	if m.data.Message != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", messageStyle.Render(m.data.Message))
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewStreak() string {
	current := m.data.Record.CurrentStreak
	next := streak.NextMilestone(current)

	unit := "days"
	if current == 1 {
		unit = "day"
	}
	counter := counterStyle.Render(fmt.Sprintf("%d %s", current, unit))

	bar := lipgloss.JoinVertical(lipgloss.Center,
		m.progress.ViewAs(streak.ProgressToNext(current)/100),
		labelStyle.Render(fmt.Sprintf("%d days to %s %s", streak.DaysUntilNext(current), next.Badge, next.Label)),
	)

	stats := []string{
		stat("Best", fmt.Sprintf("%d", m.data.Record.BestStreak)),
		stat("Time saved", orDash(streak.TimeSaved(current))),
		stat("Money saved", orDash(streak.MoneySaved(current))),
		stat("Overcome today", fmt.Sprintf("%d", m.data.TodayOvercome)),
	}

	lines := []string{labelStyle.Render(m.data.Label), counter, bar, ""}
	if ms, ok := streak.CurrentMilestone(current); ok {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%s %s", ms.Badge, ms.Label)), "")
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func stat(label, value string) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Center, statStyle.Render(value), labelStyle.Render(label)),
	)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
