package analytics

import (
	"sort"

	"github.com/sablereed/ritual/internal/models"
)

// SeriesPoint is one charted day: points earned that day and the running
// total.
type SeriesPoint struct {
	Date       string `json:"date"`
	Daily      int    `json:"daily"`
	Cumulative int    `json:"cumulative"`
}

// PointsSeries builds the chronological points series for charting from
// every ledger date. Daily sums use each discipline's current point value,
// so the series shifts when point values are edited. Leading all-zero days
// are dropped; once a nonzero day has been emitted, zero days are kept so
// the cumulative line stays continuous.
func PointsSeries(records map[string]models.DayRecord, disciplines []models.Discipline) []SeriesPoint {
	pointsByID := make(map[string]int, len(disciplines))
	for _, d := range disciplines {
		pointsByID[d.ID] = d.Points
	}

	dates := make([]string, 0, len(records))
	for dateKey := range records {
		dates = append(dates, dateKey)
	}
	sort.Strings(dates)

	var series []SeriesPoint
	cumulative := 0
	for _, dateKey := range dates {
		daily := 0
		for id, done := range records[dateKey] {
			if !done {
				continue
			}
			if points, ok := pointsByID[id]; ok {
				daily += points
			}
		}
		cumulative += daily
		if daily > 0 || len(series) > 0 {
			series = append(series, SeriesPoint{Date: dateKey, Daily: daily, Cumulative: cumulative})
		}
	}
	return series
}
