package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sablereed/ritual/internal/analytics"
	"github.com/sablereed/ritual/internal/tracker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = docStyle.Render(m.checklist.View())
	case StateManage:
		content = docStyle.Render(m.disciplineList.View())
	case StatePoints:
		content = docStyle.Render(m.viewPoints())
	case StateAnalysis:
		content = docStyle.Render(m.viewAnalysis())
	case StateAddDiscipline, StateSpend:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.validationWarning != "" {
		sections = append(sections, dangerStyle.Render(" "+m.validationWarning))
	}
	if m.statusMessage != "" {
		sections = append(sections, statusStyle.Render(" "+m.statusMessage))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Manage", "Points", "Analysis"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPoints() string {
	exchange := m.tracker.Exchange()
	balance := m.tracker.Balance()

	var b strings.Builder
	b.WriteString(pointsStyle.Render(fmt.Sprintf("%s ★", humanize.Comma(int64(balance)))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s)", exchange.FormatConverted(balance))))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Earned: %s ★   Spent: %s ★\n",
		humanize.Comma(int64(m.tracker.TotalEarned())),
		humanize.Comma(int64(m.tracker.TotalSpent()))))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Exchange: %d ★ = %v %s\n", exchange.Rate, exchange.Value, exchange.Unit)))

	rewards := m.tracker.Rewards()
	if len(rewards) > 0 {
		b.WriteString("\nRecent rewards:\n")
		shown := 0
		for i := len(rewards) - 1; i >= 0 && shown < 5; i-- {
			r := rewards[i]
			b.WriteString(fmt.Sprintf("  %s  -%d ★  %s\n", r.Date, r.PointsSpent, r.Description))
			shown++
		}
	}

	b.WriteString(dimStyle.Render("\nPress 's' to spend points."))
	return b.String()
}

func (m Model) viewAnalysis() string {
	today := tracker.TodayKey()
	records := m.tracker.Records()
	active := m.tracker.ActiveDisciplines()
	window := analytics.ResolveWindow(records, m.statsSpan, today)
	stats := analytics.ComputeStats(records, active, window, today)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Range: %s  (press 'r' to change)\n\n", m.rangeLabel()))
	b.WriteString(fmt.Sprintf("Streak: %d day(s)   Average: %d%%   Perfect days: %d\n", stats.Streak, stats.AverageRate, stats.PerfectDays))

	rates := analytics.DisciplineRates(records, active, window)
	if len(rates) > 0 {
		b.WriteString("\n")
		for _, rate := range rates {
			filled := rate.Percent / 5
			bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
			b.WriteString(fmt.Sprintf("%-20s %3d%% %s\n", rate.Discipline.Name, rate.Percent, bar))
		}
	}

	cells := analytics.Heatmap(records, active, window)
	if len(cells) > 0 {
		var strip strings.Builder
		for _, cell := range cells {
			switch {
			case cell.Intensity <= 0.08:
				strip.WriteRune('·')
			case cell.Intensity < 0.45:
				strip.WriteRune('░')
			case cell.Intensity < 0.75:
				strip.WriteRune('▒')
			case cell.Intensity < 1:
				strip.WriteRune('▓')
			default:
				strip.WriteRune('█')
			}
		}
		b.WriteString("\n" + strip.String() + "\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s .. %s", cells[0].Date, cells[len(cells)-1].Date)))
	}

	return b.String()
}

func (m Model) rangeLabel() string {
	if m.statsSpan == analytics.RangeAll {
		return "all time"
	}
	return fmt.Sprintf("last %d days", m.statsSpan)
}

func (m Model) viewConfirmDelete() string {
	name := m.deleteTargetID
	if d, ok := m.tracker.Discipline(m.deleteTargetID); ok {
		name = d.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all of its history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
