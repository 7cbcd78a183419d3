package analytics

import (
	"math"
	"testing"

	"github.com/sablereed/ritual/internal/models"
)

const today = "2026-08-31"

func activeSet(ids ...string) []models.Discipline {
	var active []models.Discipline
	for _, id := range ids {
		active = append(active, models.Discipline{ID: id, Name: id, Points: 5, Active: true})
	}
	return active
}

func TestResolveWindowFixed(t *testing.T) {
	window := ResolveWindow(nil, 7, today)
	if len(window) != 7 {
		t.Fatalf("expected 7 days, got %d", len(window))
	}
	if window[0] != "2026-08-25" {
		t.Errorf("window should start 6 days back, got %s", window[0])
	}
	if window[6] != today {
		t.Errorf("window should end today, got %s", window[6])
	}

	// Month boundary
	window = ResolveWindow(nil, 3, "2026-03-01")
	want := []string{"2026-02-27", "2026-02-28", "2026-03-01"}
	for i := range want {
		if window[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, window[i], want[i])
		}
	}
}

func TestResolveWindowAll(t *testing.T) {
	records := map[string]models.DayRecord{
		"2026-08-28": {"a": true},
		"2026-08-26": {"a": true},
	}

	window := ResolveWindow(records, RangeAll, today)
	want := []string{"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30", "2026-08-31"}
	if len(window) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(window))
	}
	for i := range want {
		if window[i] != want[i] {
			t.Errorf("window[%d] = %s, want %s", i, window[i], want[i])
		}
	}

	if got := ResolveWindow(map[string]models.DayRecord{}, RangeAll, today); len(got) != 0 {
		t.Errorf("empty ledger should resolve to an empty window, got %v", got)
	}
}

func TestStreak(t *testing.T) {
	active := activeSet("a", "b")

	records := map[string]models.DayRecord{
		"2026-08-29": {"a": true, "b": true},
		"2026-08-30": {"a": true, "b": true},
		"2026-08-31": {"a": true, "b": true},
	}
	if got := Streak(records, active, today); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}

	// One incomplete discipline today breaks the streak immediately
	records["2026-08-31"] = models.DayRecord{"a": true}
	if got := Streak(records, active, today); got != 0 {
		t.Errorf("Streak with incomplete today = %d, want 0", got)
	}

	// A gap day terminates the walk
	records = map[string]models.DayRecord{
		"2026-08-28": {"a": true, "b": true},
		"2026-08-30": {"a": true, "b": true},
		"2026-08-31": {"a": true, "b": true},
	}
	if got := Streak(records, active, today); got != 2 {
		t.Errorf("Streak with gap = %d, want 2", got)
	}

	if got := Streak(records, nil, today); got != 0 {
		t.Errorf("Streak with no active disciplines = %d, want 0", got)
	}
	if got := Streak(map[string]models.DayRecord{}, active, today); got != 0 {
		t.Errorf("Streak with empty ledger = %d, want 0", got)
	}
}

// Two disciplines worth 5 and 10 points: yesterday completes both, today
// completes only the first.
func TestComputeStatsScenario(t *testing.T) {
	active := []models.Discipline{
		{ID: "a", Name: "First", Points: 5, Active: true},
		{ID: "b", Name: "Second", Points: 10, Active: true},
	}
	records := map[string]models.DayRecord{
		"2026-08-30": {"a": true, "b": true},
		"2026-08-31": {"a": true},
	}

	window := ResolveWindow(records, 7, today)
	stats := ComputeStats(records, active, window, today)

	// mean of [0,0,0,0,0,100%,50%] rounds to 21
	if stats.AverageRate != 21 {
		t.Errorf("AverageRate = %d, want 21", stats.AverageRate)
	}
	if stats.PerfectDays != 1 {
		t.Errorf("PerfectDays = %d, want 1", stats.PerfectDays)
	}
	if stats.Streak != 0 {
		t.Errorf("Streak = %d, want 0 (today incomplete)", stats.Streak)
	}
}

func TestComputeStatsVacuousCases(t *testing.T) {
	records := map[string]models.DayRecord{"2026-08-31": {"a": true}}
	window := ResolveWindow(records, 7, today)

	if got := ComputeStats(records, nil, window, today); got != (Stats{}) {
		t.Errorf("no active disciplines should zero all stats, got %+v", got)
	}
	if got := ComputeStats(records, activeSet("a"), nil, today); got != (Stats{}) {
		t.Errorf("empty window should zero all stats, got %+v", got)
	}
}

func TestDisciplineRates(t *testing.T) {
	active := []models.Discipline{
		{ID: "a", Name: "First", Points: 5, Active: true},
		{ID: "b", Name: "Second", Points: 10, Active: true},
	}
	records := map[string]models.DayRecord{
		"2026-08-30": {"a": true, "b": true},
		"2026-08-31": {"a": true},
	}
	window := ResolveWindow(records, 7, today)

	rates := DisciplineRates(records, active, window)
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}

	// Registry order, not rate order
	if rates[0].Discipline.ID != "a" || rates[1].Discipline.ID != "b" {
		t.Error("rates should preserve registry order")
	}
	if rates[0].Percent != 29 { // 2/7 rounds to 29
		t.Errorf("rate for a = %d, want 29", rates[0].Percent)
	}
	if rates[1].Percent != 14 { // 1/7 rounds to 14
		t.Errorf("rate for b = %d, want 14", rates[1].Percent)
	}
}

func TestHeatmapIntensities(t *testing.T) {
	active := activeSet("a", "b")
	records := map[string]models.DayRecord{
		"2026-08-30": {"a": true},             // fraction 0.5
		"2026-08-31": {"a": true, "b": true},  // fraction 1
	}
	window := []string{"2026-08-29", "2026-08-30", "2026-08-31"}

	cells := Heatmap(records, active, window)
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}

	if cells[0].Intensity != 0.08 {
		t.Errorf("empty day intensity = %v, want 0.08", cells[0].Intensity)
	}
	if math.Abs(cells[1].Intensity-0.575) > 1e-9 {
		t.Errorf("half day intensity = %v, want 0.575", cells[1].Intensity)
	}
	if math.Abs(cells[2].Intensity-1.0) > 1e-9 {
		t.Errorf("perfect day intensity = %v, want 1.0", cells[2].Intensity)
	}
}

func TestPointsSeries(t *testing.T) {
	disciplines := []models.Discipline{
		{ID: "a", Points: 5},
		{ID: "b", Points: 10},
	}
	records := map[string]models.DayRecord{
		"2026-08-26": {"a": false},            // leading zero day: trimmed
		"2026-08-27": {"a": true, "b": true},  // 15
		"2026-08-28": {"a": false},            // interior zero day: kept
		"2026-08-29": {"a": true, "gone": true}, // deleted discipline earns nothing
	}

	series := PointsSeries(records, disciplines)
	want := []SeriesPoint{
		{Date: "2026-08-27", Daily: 15, Cumulative: 15},
		{Date: "2026-08-28", Daily: 0, Cumulative: 15},
		{Date: "2026-08-29", Daily: 5, Cumulative: 20},
	}
	if len(series) != len(want) {
		t.Fatalf("expected %d points, got %d: %+v", len(want), len(series), series)
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %+v, want %+v", i, series[i], want[i])
		}
	}
}

func TestPointsSeriesEmpty(t *testing.T) {
	if got := PointsSeries(map[string]models.DayRecord{}, nil); len(got) != 0 {
		t.Errorf("empty ledger should yield empty series, got %+v", got)
	}
}
