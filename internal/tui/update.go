package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/tracker"
	"github.com/sablereed/ritual/internal/tui/components/checklist"
	"github.com/sablereed/ritual/internal/tui/components/disciplinelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// While a form is open every message belongs to it: huh advances
	// fields and completes through its own command-produced messages,
	// not just key presses.
	if m.state == StateAddDiscipline || m.state == StateSpend {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m.updateForm(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.checklist.SetSize(msg.Width-h, msg.Height-v-4)
		m.disciplineList.SetSize(msg.Width-h, msg.Height-v-4)

	case checklist.ToggleMsg:
		today := tracker.TodayKey()
		done := m.tracker.IsComplete(today, msg.ID)
		if err := m.tracker.SetComplete(today, msg.ID, !done); err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", err)
		} else if d, ok := m.tracker.Discipline(msg.ID); ok && !done {
			m.statusMessage = fmt.Sprintf("+%d ★ %s", d.Points, d.Name)
		} else {
			m.statusMessage = ""
		}
		m.refresh()
		return m, nil

	case disciplinelist.AddDisciplineMsg:
		m.disciplineForm = &DisciplineFormModel{Points: strconv.Itoa(constants.DefaultPoints)}
		m.form = newDisciplineForm(m.disciplineForm)
		m.state = StateAddDiscipline
		return m, m.form.Init()

	case disciplinelist.ToggleActiveMsg:
		if d, ok := m.tracker.Discipline(msg.ID); ok {
			if err := m.tracker.SetActive(msg.ID, !d.Active); err != nil {
				m.statusMessage = fmt.Sprintf("Error: %v", err)
			}
			m.refresh()
		}
		return m, nil

	case disciplinelist.DeleteDisciplineMsg:
		m.deleteTargetID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMessage = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMessage = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.state {
		case StatePoints:
			if key.Matches(msg, m.keys.Spend) {
				m.spendForm = &SpendFormModel{}
				m.form = newSpendForm(m.spendForm)
				m.state = StateSpend
				return m, m.form.Init()
			}
		case StateAnalysis:
			if key.Matches(msg, m.keys.Range) {
				m.cycleRange()
				return m, nil
			}
		}
	}

	switch m.state {
	case StateToday:
		var cmd tea.Cmd
		m.checklist, cmd = m.checklist.Update(msg)
		cmds = append(cmds, cmd)
	case StateManage:
		var cmd tea.Cmd
		m.disciplineList, cmd = m.disciplineList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.state = m.formOrigin()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddDiscipline {
			m.applyDisciplineForm()
		} else {
			m.applySpendForm()
		}
		m.form = nil
		m.state = m.formOrigin()
		m.refresh()
	case huh.StateAborted:
		m.form = nil
		m.state = m.formOrigin()
	}

	return m, tea.Batch(cmds...)
}

// formOrigin maps a form state back to the tab it was opened from
func (m Model) formOrigin() SessionState {
	if m.state == StateSpend {
		return StatePoints
	}
	return StateManage
}

func (m *Model) applyDisciplineForm() {
	points := constants.DefaultPoints
	if p, err := strconv.Atoi(strings.TrimSpace(m.disciplineForm.Points)); err == nil {
		points = p
	}
	d, err := m.tracker.CreateDiscipline(m.disciplineForm.Name, points)
	if err != nil {
		m.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("Added %q (%d ★)", d.Name, d.Points)
}

func (m *Model) applySpendForm() {
	points, err := strconv.Atoi(strings.TrimSpace(m.spendForm.Points))
	if err != nil {
		m.statusMessage = "Error: points must be a number"
		return
	}
	reward, err := m.tracker.Spend(points, m.spendForm.Description, "")
	if err != nil {
		m.statusMessage = fmt.Sprintf("Error: %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("Spent %d ★ on %s", reward.PointsSpent, reward.Description)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteDiscipline(m.deleteTargetID); err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", err)
		} else {
			m.statusMessage = "Discipline deleted"
		}
		m.deleteTargetID = ""
		m.state = StateManage
		m.refresh()
	case "n", "N", "esc", "q":
		m.deleteTargetID = ""
		m.state = StateManage
	}
	return m, nil
}
