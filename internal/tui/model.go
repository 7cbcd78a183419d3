package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sablereed/ritual/internal/analytics"
	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/tracker"
	"github.com/sablereed/ritual/internal/tui/components/checklist"
	"github.com/sablereed/ritual/internal/tui/components/disciplinelist"
	"github.com/sablereed/ritual/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateManage
	StatePoints
	StateAnalysis
	StateAddDiscipline
	StateSpend
	StateConfirmDelete
)

const tabCount = 4

type DisciplineFormModel struct {
	Name   string
	Points string
}

type SpendFormModel struct {
	Points      string
	Description string
}

type Model struct {
	tracker           *tracker.Tracker
	state             SessionState
	keys              KeyMap
	help              help.Model
	checklist         checklist.Model
	disciplineList    disciplinelist.Model
	form              *huh.Form
	disciplineForm    *DisciplineFormModel
	spendForm         *SpendFormModel
	deleteTargetID    string
	statusMessage     string
	validationWarning string
	statsSpan         int
	quitting          bool
	width             int
	height            int
}

func NewModel(tr *tracker.Tracker) Model {
	today := tr.DayRecord(tracker.TodayKey())
	cl := checklist.New(tr.ActiveDisciplines(), today, 0, 0)
	dl := disciplinelist.New(tr.Disciplines(), 0, 0)

	m := Model{
		tracker:        tr,
		state:          StateToday,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		checklist:      cl,
		disciplineList: dl,
		statsSpan:      7,
	}
	m.updateValidationStatus()
	return m
}

// updateValidationStatus runs the consistency checks and caches a warning line
func (m *Model) updateValidationStatus() {
	v := validation.New()
	result := v.Validate(m.tracker.Disciplines(), m.tracker.Records(), m.tracker.Rewards(), m.tracker.Exchange())
	if result.HasIssues() {
		m.validationWarning = fmt.Sprintf("⚠ %d data issue(s), run 'ritual validate'", len(result.Issues))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateManage:
		keys = append(keys, m.keys.Add, m.keys.Pause, m.keys.Delete)
	case StatePoints:
		keys = append(keys, m.keys.Spend)
	case StateAnalysis:
		keys = append(keys, m.keys.Range)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateManage:
		actions = []key.Binding{m.keys.Add, m.keys.Pause, m.keys.Delete}
	case StatePoints:
		actions = []key.Binding{m.keys.Spend}
	case StateAnalysis:
		actions = []key.Binding{m.keys.Range}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh resyncs the list components after any tracker mutation
func (m *Model) refresh() {
	today := m.tracker.DayRecord(tracker.TodayKey())
	m.checklist.SetDisciplines(m.tracker.ActiveDisciplines(), today)
	m.disciplineList.SetDisciplines(m.tracker.Disciplines())
	m.updateValidationStatus()
}

// cycleRange steps the analysis window through 7, 30, 90 days and all time
func (m *Model) cycleRange() {
	switch m.statsSpan {
	case 7:
		m.statsSpan = 30
	case 30:
		m.statsSpan = 90
	case 90:
		m.statsSpan = analytics.RangeAll
	default:
		m.statsSpan = 7
	}
}

func newDisciplineForm(fm *DisciplineFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Discipline Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title(fmt.Sprintf("Points (%d-%d)", constants.MinPoints, constants.MaxPoints)).
				Value(&fm.Points).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("points must be a number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newSpendForm(fm *SpendFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Points to spend").
				Value(&fm.Points).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("points must be a number")
					}
					if i <= 0 {
						return fmt.Errorf("points must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("What for?").
				Value(&fm.Description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
