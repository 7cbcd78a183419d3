// Package analytics derives display-ready statistics from the registry and
// ledger. Everything here is a pure computation; nothing is mutated or
// persisted.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
)

// RangeAll selects every calendar day from the earliest ledger entry
// through today.
const RangeAll = 0

// Stats holds the headline figures for the analysis view.
type Stats struct {
	Streak      int
	AverageRate int // rounded percent
	PerfectDays int
}

// DisciplineRate is one discipline's completion rate within a window.
type DisciplineRate struct {
	Discipline models.Discipline
	Percent    int
}

// HeatmapCell is one day in the heatmap strip. Intensity is a display
// opacity: a visible minimum for tracked-but-empty days, then a linear
// scale above it.
type HeatmapCell struct {
	Date      string
	Fraction  float64
	Intensity float64
}

// ResolveWindow returns the consecutive date keys covered by the requested
// range, oldest first. A positive span selects that many days ending today;
// RangeAll spans from the earliest ledger date through today, and is empty
// when the ledger is empty.
func ResolveWindow(records map[string]models.DayRecord, span int, today string) []string {
	if span == RangeAll {
		dates := make([]string, 0, len(records))
		for dateKey := range records {
			dates = append(dates, dateKey)
		}
		if len(dates) == 0 {
			return nil
		}
		sort.Strings(dates)

		var window []string
		for current := dates[0]; current <= today; current = nextDay(current) {
			window = append(window, current)
		}
		return window
	}

	window := make([]string, 0, span)
	for i := span - 1; i >= 0; i-- {
		window = append(window, addDays(today, -i))
	}
	return window
}

// ComputeStats derives the streak, average completion rate, and perfect-day
// count. The streak is independent of the window and always walks backward
// from today. All statistics are zero when there are no active disciplines
// or the window is empty.
func ComputeStats(records map[string]models.DayRecord, active []models.Discipline, window []string, today string) Stats {
	if len(active) == 0 || len(window) == 0 {
		return Stats{}
	}

	stats := Stats{Streak: Streak(records, active, today)}

	totalFraction := 0.0
	for _, dateKey := range window {
		fraction := dayFraction(records, active, dateKey)
		totalFraction += fraction
		if fraction == 1 {
			stats.PerfectDays++
		}
	}
	stats.AverageRate = int(math.Round(totalFraction / float64(len(window)) * 100))

	return stats
}

// Streak counts consecutive days, ending today, on which every active
// discipline was completed. A day with no ledger entry breaks the streak.
// The walk is bounded by the earliest ledger date and a sanity ceiling so
// it terminates even if the caller passes an empty active set.
func Streak(records map[string]models.DayRecord, active []models.Discipline, today string) int {
	if len(active) == 0 {
		return 0
	}

	floor := ""
	for dateKey := range records {
		if floor == "" || dateKey < floor {
			floor = dateKey
		}
	}
	if floor == "" {
		return 0
	}

	streak := 0
	for current := today; current >= floor && streak < constants.StreakCeiling; current = addDays(current, -1) {
		dayRecord := records[current]
		allDone := true
		for _, d := range active {
			if !dayRecord.Done(d.ID) {
				allDone = false
				break
			}
		}
		if !allDone {
			break
		}
		streak++
	}
	return streak
}

// DisciplineRates computes each active discipline's completion rate within
// the window, in registry order.
func DisciplineRates(records map[string]models.DayRecord, active []models.Discipline, window []string) []DisciplineRate {
	if len(active) == 0 || len(window) == 0 {
		return nil
	}

	rates := make([]DisciplineRate, 0, len(active))
	for _, d := range active {
		done := 0
		for _, dateKey := range window {
			if records[dateKey].Done(d.ID) {
				done++
			}
		}
		rates = append(rates, DisciplineRate{
			Discipline: d,
			Percent:    int(math.Round(float64(done) / float64(len(window)) * 100)),
		})
	}
	return rates
}

// Heatmap maps each day in the window to its completion fraction and a
// display intensity.
func Heatmap(records map[string]models.DayRecord, active []models.Discipline, window []string) []HeatmapCell {
	if len(active) == 0 || len(window) == 0 {
		return nil
	}

	cells := make([]HeatmapCell, 0, len(window))
	for _, dateKey := range window {
		fraction := dayFraction(records, active, dateKey)
		intensity := 0.08
		if fraction > 0 {
			intensity = 0.15 + fraction*0.85
		}
		cells = append(cells, HeatmapCell{Date: dateKey, Fraction: fraction, Intensity: intensity})
	}
	return cells
}

func dayFraction(records map[string]models.DayRecord, active []models.Discipline, dateKey string) float64 {
	if len(active) == 0 {
		return 0
	}
	dayRecord := records[dateKey]
	done := 0
	for _, d := range active {
		if dayRecord.Done(d.ID) {
			done++
		}
	}
	return float64(done) / float64(len(active))
}

func addDays(dateKey string, days int) string {
	d, err := time.Parse(constants.DateFormat, dateKey)
	if err != nil {
		return dateKey
	}
	return d.AddDate(0, 0, days).Format(constants.DateFormat)
}

func nextDay(dateKey string) string {
	return addDays(dateKey, 1)
}
