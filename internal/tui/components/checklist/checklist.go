package checklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sablereed/ritual/internal/models"
)

// ToggleMsg asks the parent model to flip today's completion for a discipline
type ToggleMsg struct {
	ID string
}

type Item struct {
	Discipline models.Discipline
	Done       bool
}

func (i Item) Title() string {
	mark := "[ ]"
	if i.Done {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, i.Discipline.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%d ★", i.Discipline.Points)
}

func (i Item) FilterValue() string { return i.Discipline.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(disciplines []models.Discipline, today models.DayRecord, width, height int) Model {
	l := list.New(buildItems(disciplines, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

func buildItems(disciplines []models.Discipline, today models.DayRecord) []list.Item {
	items := make([]list.Item, len(disciplines))
	for i, d := range disciplines {
		items[i] = Item{Discipline: d, Done: today.Done(d.ID)}
	}
	return items
}

func (m *Model) SetDisciplines(disciplines []models.Discipline, today models.DayRecord) {
	m.list.SetItems(buildItems(disciplines, today))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{ID: i.Discipline.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No active disciplines.\n  Add one from the Manage tab."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
