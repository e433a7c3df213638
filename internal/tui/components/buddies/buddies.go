package buddies

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/reboot/internal/models"
)

type AddBuddyMsg struct{}

type RemoveBuddyMsg struct {
	ID string
}

type Item struct {
	Buddy models.Buddy
}

func (i Item) Title() string       { return i.Buddy.Name }
func (i Item) Description() string { return i.Buddy.Phone }
func (i Item) FilterValue() string { return i.Buddy.Name }

type KeyMap struct {
	Add    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add buddy"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove buddy"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(all []models.Buddy, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove}
	}

	m := Model{list: l, keys: keys}
	m.SetBuddies(all)
	return m
}

func (m *Model) SetBuddies(all []models.Buddy) {
	items := make([]list.Item, len(all))
	for i, b := range all {
		items[i] = Item{Buddy: b}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddBuddyMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveBuddyMsg{ID: i.Buddy.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No accountability buddies yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
