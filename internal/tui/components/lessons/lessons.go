package lessons

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/reboot/internal/content"
)

type Item struct {
	Lesson content.Lesson
}

func (i Item) Title() string { return i.Lesson.Title }

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Lesson.Duration, i.Lesson.Description)
}

func (i Item) FilterValue() string { return i.Lesson.Title }

type KeyMap struct {
	Category key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Category: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next category"),
		),
	}
}

// Model lists lessons, optionally narrowed to one category. Cycling with
// 'f' visits every category and then returns to all lessons.
type Model struct {
	list       list.Model
	keys       KeyMap
	catalog    *content.Catalog
	categories []string
	category   int // index into categories, -1 for all
}

func New(catalog *content.Catalog, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Category}
	}

	m := Model{
		list:       l,
		keys:       keys,
		catalog:    catalog,
		categories: catalog.Categories(),
		category:   -1,
	}
	m.refresh()
	return m
}

// Category returns the active category, empty for all.
func (m Model) Category() string {
	if m.category < 0 {
		return ""
	}
	return m.categories[m.category]
}

func (m *Model) NextCategory() {
	m.category++
	if m.category >= len(m.categories) {
		m.category = -1
	}
	m.refresh()
}

func (m *Model) refresh() {
	lessons := m.catalog.LessonsIn(m.Category())
	items := make([]list.Item, len(lessons))
	for i, l := range lessons {
		items[i] = Item{Lesson: l}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Category) {
			m.NextCategory()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := "All lessons"
	if c := m.Category(); c != "" {
		header = "Category: " + c
	}
	return header + "\n\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
