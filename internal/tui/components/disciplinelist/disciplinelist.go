package disciplinelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sablereed/ritual/internal/models"
)

type AddDisciplineMsg struct{}

type DeleteDisciplineMsg struct {
	ID string
}

type ToggleActiveMsg struct {
	ID string
}

type Item struct {
	Discipline models.Discipline
}

func (i Item) Title() string {
	if !i.Discipline.Active {
		return "⏸ " + i.Discipline.Name + " (paused)"
	}
	return i.Discipline.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%d ★ per completion", i.Discipline.Points)
}

func (i Item) FilterValue() string { return i.Discipline.Name }

type KeyMap struct {
	Add    key.Binding
	Pause  key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(disciplines []models.Discipline, width, height int) Model {
	items := make([]list.Item, len(disciplines))
	for i, d := range disciplines {
		items[i] = Item{Discipline: d}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Disciplines"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Pause, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Pause, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetDisciplines(disciplines []models.Discipline) {
	items := make([]list.Item, len(disciplines))
	for i, d := range disciplines {
		items[i] = Item{Discipline: d}
	}
	m.list.SetItems(items)
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
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddDisciplineMsg{} }
		case key.Matches(msg, m.keys.Pause):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleActiveMsg{ID: i.Discipline.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteDisciplineMsg{ID: i.Discipline.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No disciplines yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
