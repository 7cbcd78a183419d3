package storage

import (
	"path/filepath"
	"testing"

	"github.com/sablereed/ritual/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ritual.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreDisciplineOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	disciplines := []models.Discipline{
		{ID: "c", Name: "Walk", Points: 3, Active: true, CreatedAt: "2026-01-01"},
		{ID: "a", Name: "Meditate", Points: 10, Active: true, CreatedAt: "2026-01-01"},
		{ID: "b", Name: "Journal", Points: 5, Active: false, CreatedAt: "2026-01-02"},
	}
	if err := store.SaveDisciplines(disciplines); err != nil {
		t.Fatalf("SaveDisciplines failed: %v", err)
	}

	got, err := store.GetDisciplines()
	if err != nil {
		t.Fatalf("GetDisciplines failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 disciplines, got %d", len(got))
	}

	// Insertion order is load-bearing for display
	for i := range disciplines {
		if got[i] != disciplines[i] {
			t.Errorf("position %d: got %+v, want %+v", i, got[i], disciplines[i])
		}
	}
}

func TestSQLiteStoreRecords(t *testing.T) {
	store := newTestSQLiteStore(t)

	records := map[string]models.DayRecord{
		"2026-02-01": {"a": true, "b": false},
		"2026-02-02": {"a": true},
	}
	if err := store.SaveRecords(records); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	got, err := store.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if !got["2026-02-01"].Done("a") || got["2026-02-01"].Done("b") {
		t.Errorf("2026-02-01 record wrong: %+v", got["2026-02-01"])
	}
	if !got["2026-02-02"].Done("a") {
		t.Errorf("2026-02-02 record wrong: %+v", got["2026-02-02"])
	}

	// Full rewrite drops removed days
	if err := store.SaveRecords(map[string]models.DayRecord{"2026-02-02": {"a": true}}); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}
	got, err = store.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if _, ok := got["2026-02-01"]; ok {
		t.Error("removed day should not survive a rewrite")
	}
}

func TestSQLiteStoreRewards(t *testing.T) {
	store := newTestSQLiteStore(t)

	rewards := []models.Reward{
		{ID: "r1", Date: "2026-03-01", PointsSpent: 30, Description: "Movie night"},
		{ID: "r2", Date: "2026-03-05", PointsSpent: 10, Description: "Fancy coffee", Image: "data:image/jpeg;base64,AAAA"},
	}
	if err := store.SaveRewards(rewards); err != nil {
		t.Fatalf("SaveRewards failed: %v", err)
	}

	got, err := store.GetRewards()
	if err != nil {
		t.Fatalf("GetRewards failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rewards, got %d", len(got))
	}
	for i := range rewards {
		if got[i] != rewards[i] {
			t.Errorf("position %d: got %+v, want %+v", i, got[i], rewards[i])
		}
	}
}

func TestSQLiteStoreExchangeDefault(t *testing.T) {
	store := newTestSQLiteStore(t)

	// No row yet: defaults
	got, err := store.GetExchange()
	if err != nil {
		t.Fatalf("GetExchange failed: %v", err)
	}
	if got != DefaultExchange() {
		t.Errorf("expected default exchange, got %+v", got)
	}

	ex := models.Exchange{Rate: 200, Value: 1.5, Unit: "book"}
	if err := store.SaveExchange(ex); err != nil {
		t.Fatalf("SaveExchange failed: %v", err)
	}
	got, err = store.GetExchange()
	if err != nil {
		t.Fatalf("GetExchange failed: %v", err)
	}
	if got != ex {
		t.Errorf("exchange did not round trip: %+v", got)
	}
}
