package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sablereed/ritual/internal/analytics"
)

type ChartCmd struct {
	Width int `short:"w" help:"Chart width in columns." default:"60"`
}

const chartHeight = 10

func (c *ChartCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	series := analytics.PointsSeries(tr.Records(), tr.Disciplines())
	if len(series) == 0 {
		fmt.Println("No completions recorded yet.")
		return nil
	}

	width := c.Width
	if width < 10 {
		width = 10
	}

	points := resample(series, width)
	peak := points[len(points)-1].Cumulative
	if peak == 0 {
		peak = 1
	}

	// plot cumulative totals, one column per sampled day
	grid := make([][]rune, chartHeight)
	for row := range grid {
		grid[row] = make([]rune, len(points))
		for col := range grid[row] {
			grid[row][col] = ' '
		}
	}
	for col, pt := range points {
		h := pt.Cumulative * chartHeight / peak
		for row := 0; row < h; row++ {
			grid[chartHeight-1-row][col] = '█'
		}
		if h == 0 && pt.Cumulative > 0 {
			grid[chartHeight-1][col] = '▁'
		}
	}

	fmt.Printf("Cumulative points (%s total)\n\n", humanize.Comma(int64(peak)))
	for row, line := range grid {
		label := "      "
		if row == 0 {
			label = fmt.Sprintf("%5d ", peak)
		} else if row == chartHeight-1 {
			label = "    0 "
		}
		fmt.Printf("%s|%s\n", label, string(line))
	}
	fmt.Printf("      +%s\n", strings.Repeat("-", len(points)))
	fmt.Printf("       %s%s%s\n",
		formatShortDate(points[0].Date),
		strings.Repeat(" ", max(1, len(points)-14)),
		formatShortDate(points[len(points)-1].Date))

	return nil
}

// resample reduces a series to at most width points, keeping the last
// point of each bucket so cumulative totals stay monotone.
func resample(series []analytics.SeriesPoint, width int) []analytics.SeriesPoint {
	if len(series) <= width {
		return series
	}
	out := make([]analytics.SeriesPoint, 0, width)
	for i := 0; i < width; i++ {
		idx := (i+1)*len(series)/width - 1
		out = append(out, series[idx])
	}
	return out
}
