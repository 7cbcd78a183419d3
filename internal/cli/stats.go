package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sablereed/ritual/internal/analytics"
	"github.com/sablereed/ritual/internal/tracker"
)

type StatsCmd struct {
	Range string `short:"r" help:"Window: number of days or 'all'." default:"7"`
}

// parseRange turns "7"/"30"/"90"/"all" into an analytics span
func parseRange(s string) (int, error) {
	if s == "all" {
		return analytics.RangeAll, nil
	}
	span, err := strconv.Atoi(s)
	if err != nil || span < 1 {
		return 0, fmt.Errorf("invalid range %q, use a day count or 'all'", s)
	}
	return span, nil
}

func (c *StatsCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	span, err := parseRange(c.Range)
	if err != nil {
		return err
	}

	today := tracker.TodayKey()
	records := tr.Records()
	active := tr.ActiveDisciplines()
	window := analytics.ResolveWindow(records, span, today)

	stats := analytics.ComputeStats(records, active, window, today)
	fmt.Printf("Streak:       %d day(s)\n", stats.Streak)
	fmt.Printf("Average rate: %d%%\n", stats.AverageRate)
	fmt.Printf("Perfect days: %d\n", stats.PerfectDays)

	rates := analytics.DisciplineRates(records, active, window)
	if len(rates) > 0 {
		fmt.Println("\nPer-discipline completion:")
		for _, rate := range rates {
			fmt.Printf("  %-24s %3d%%  %s\n", rate.Discipline.Name, rate.Percent, rateBar(rate.Percent))
		}
	}

	cells := analytics.Heatmap(records, active, window)
	if len(cells) > 0 {
		fmt.Println("\nHeatmap:")
		fmt.Printf("  %s\n", heatmapStrip(cells))
		fmt.Printf("  %s .. %s\n", formatShortDate(cells[0].Date), formatShortDate(cells[len(cells)-1].Date))
	}

	return nil
}

func rateBar(percent int) string {
	filled := percent / 5 // 20-char bar
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// heatmapStrip renders one shaded cell per day from the display intensity
func heatmapStrip(cells []analytics.HeatmapCell) string {
	var b strings.Builder
	for _, cell := range cells {
		switch {
		case cell.Intensity <= 0.08:
			b.WriteRune('·')
		case cell.Intensity < 0.45:
			b.WriteRune('░')
		case cell.Intensity < 0.75:
			b.WriteRune('▒')
		case cell.Intensity < 1:
			b.WriteRune('▓')
		default:
			b.WriteRune('█')
		}
	}
	return b.String()
}
