package tui

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/reboot/internal/cli"
	"github.com/julianstephens/reboot/internal/constants"
	"github.com/julianstephens/reboot/internal/content"
	"github.com/julianstephens/reboot/internal/logger"
	"github.com/julianstephens/reboot/internal/notifier"
	"github.com/julianstephens/reboot/internal/profile"
	"github.com/julianstephens/reboot/internal/storage"
	"github.com/julianstephens/reboot/internal/tui/components/buddies"
	"github.com/julianstephens/reboot/internal/tui/components/dashboard"
	"github.com/julianstephens/reboot/internal/tui/components/lessons"
)

// storeChangedMsg is sent after the backing file changed on disk.
type storeChangedMsg struct{}

type milestoneMsg struct {
	text string
}

type Model struct {
	ctx           *cli.Context
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	dashboard     dashboard.Model
	lessons       lessons.Model
	buddies       buddies.Model
	craving       *cravingView
	form          *huh.Form
	buddyForm     *BuddyFormModel
	relapseForm   *RelapseFormModel
	draft         *profile.Draft
	banner        string
	formError     string
	standalone    bool // craving-only program started by 'reboot craving sos'
	watcher       *storage.Watcher
	reloads       chan struct{}
	quitting      bool
	width         int
	height        int
}

// NewModel builds the full application. Users who have not finished
// onboarding start in the onboarding form.
func NewModel(ctx *cli.Context) Model {
	catalog := content.Default()
	m := Model{
		ctx:       ctx,
		state:     constants.StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		dashboard: dashboard.New(),
		lessons:   lessons.New(catalog, 0, 0),
		buddies:   buddies.New(ctx.Buddies.All(), 0, 0),
		craving:   newCravingView(ctx),
	}
	m.refresh()
	m.setMessage(catalog.RandomMessage(rand.New(rand.NewSource(ctx.Clock.Now().UnixNano()))))

	if !ctx.Profile.Load().HasCompletedOnboarding {
		m.draft = profile.NewDraft()
		m.form = OnboardingForm(m.draft)
		m.state = constants.StateOnboarding
	}

	if js, ok := ctx.Store.(*storage.JSONStore); ok {
		m.reloads = make(chan struct{}, 1)
		reloads := m.reloads
		w, err := storage.NewWatcher(js.GetConfigPath(), func() {
			select {
			case reloads <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logger.Warn("Live reload disabled", "error", err)
		} else {
			m.watcher = w
		}
	}
	return m
}

// NewCravingModel runs only the craving intervention and exits when it is
// closed.
func NewCravingModel(ctx *cli.Context) Model {
	return Model{
		ctx:        ctx,
		state:      constants.StateCraving,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		dashboard:  dashboard.New(),
		craving:    newCravingView(ctx),
		standalone: true,
	}
}

func (m Model) Init() tea.Cmd {
	if m.standalone {
		return m.craving.open()
	}

	var cmds []tea.Cmd
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	if m.watcher != nil {
		if err := m.watcher.Start(context.Background()); err != nil {
			logger.Warn("Live reload disabled", "error", err)
		} else {
			cmds = append(cmds, waitForReload(m.reloads))
		}
	}
	cmds = append(cmds, m.celebrate())
	return tea.Batch(cmds...)
}

func waitForReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

// celebrate checks the primary streak for a milestone reached today.
func (m Model) celebrate() tea.Cmd {
	streaks, sender := m.ctx.Streaks, m.ctx.Notifier
	addictionType := m.ctx.Profile.PrimaryAddictionType()
	return func() tea.Msg {
		ms, ok := notifier.CelebrateMilestone(streaks, sender, addictionType)
		if !ok {
			return nil
		}
		return milestoneMsg{text: notifier.MilestoneText(ms)}
	}
}

// refresh reloads every tab from the domain services.
func (m *Model) refresh() {
	addictionType := m.ctx.Profile.PrimaryAddictionType()
	rec, ok := m.ctx.Streaks.Load(addictionType)

	overcome := 0
	for _, e := range m.ctx.Cravings.Today() {
		if e.Overcame {
			overcome++
		}
	}

	d := m.dashboard.Data()
	d.Label = content.Default().AddictionLabel(addictionType)
	d.Record = rec
	d.HasStreak = ok
	d.TodayOvercome = overcome
	m.dashboard.SetData(d)
	m.buddies.SetBuddies(m.ctx.Buddies.All())
}

func (m *Model) setMessage(msg string) {
	d := m.dashboard.Data()
	d.Message = msg
	m.dashboard.SetData(d)
}

// shutdown stops background watchers before the program exits.
func (m *Model) shutdown() {
	m.quitting = true
	if m.craving != nil {
		m.craving.close()
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateCraving:
		return []key.Binding{m.keys.Enter, m.keys.Back}
	case constants.StateDashboard:
		return []key.Binding{m.keys.Tab, m.keys.Craving, m.keys.Reset, m.keys.Relapse, m.keys.Quit, m.keys.Help}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state == constants.StateCraving {
		return [][]key.Binding{{m.keys.Enter, m.keys.Up, m.keys.Down, m.keys.Back}, {m.keys.Continue, m.keys.Skip}}
	}
	return m.keys.FullHelp()
}
