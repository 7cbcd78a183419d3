package tracker

import (
	"sort"

	"github.com/sablereed/ritual/internal/models"
)

// IsComplete reports whether the discipline was completed on the given day.
// Days and ids the ledger has never seen read as false.
func (t *Tracker) IsComplete(dateKey, disciplineID string) bool {
	return t.records[dateKey].Done(disciplineID)
}

// SetComplete records completion for a discipline on a day, creating the
// day's entry lazily. Idempotent; persists immediately.
func (t *Tracker) SetComplete(dateKey, disciplineID string, done bool) error {
	if t.records[dateKey] == nil {
		t.records[dateKey] = models.DayRecord{}
	}
	t.records[dateKey][disciplineID] = done
	return t.store.SaveRecords(t.records)
}

// DayRecord returns the completion map for a day. The result is a read-only
// view; an empty record is returned for days with no entry.
func (t *Tracker) DayRecord(dateKey string) models.DayRecord {
	if rec, ok := t.records[dateKey]; ok {
		return rec
	}
	return models.DayRecord{}
}

// AllDatesSorted returns every date key present in the ledger in ascending
// order, used to bound all-time ranges.
func (t *Tracker) AllDatesSorted() []string {
	dates := make([]string, 0, len(t.records))
	for dateKey := range t.records {
		dates = append(dates, dateKey)
	}
	sort.Strings(dates)
	return dates
}
