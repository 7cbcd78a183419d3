package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sablereed/ritual/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ritual.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	disciplines := []models.Discipline{
		{ID: "a", Name: "Meditate", Points: 10, Active: true, CreatedAt: "2026-01-01"},
		{ID: "b", Name: "Journal", Points: 5, Active: false, CreatedAt: "2026-01-02"},
	}
	if err := store.SaveDisciplines(disciplines); err != nil {
		t.Fatalf("SaveDisciplines failed: %v", err)
	}

	records := map[string]models.DayRecord{
		"2026-01-03": {"a": true, "b": false},
	}
	if err := store.SaveRecords(records); err != nil {
		t.Fatalf("SaveRecords failed: %v", err)
	}

	rewards := []models.Reward{
		{ID: "r1", Date: "2026-01-04", PointsSpent: 20, Description: "Ice cream"},
	}
	if err := store.SaveRewards(rewards); err != nil {
		t.Fatalf("SaveRewards failed: %v", err)
	}

	exchange := models.Exchange{Rate: 50, Value: 2.5, Unit: "coffee"}
	if err := store.SaveExchange(exchange); err != nil {
		t.Fatalf("SaveExchange failed: %v", err)
	}

	// Reload from disk into a fresh store
	reloaded := NewJSONStore(store.GetStorePath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gotDisciplines, err := reloaded.GetDisciplines()
	if err != nil {
		t.Fatalf("GetDisciplines failed: %v", err)
	}
	if len(gotDisciplines) != 2 {
		t.Fatalf("expected 2 disciplines, got %d", len(gotDisciplines))
	}
	if gotDisciplines[0] != disciplines[0] || gotDisciplines[1] != disciplines[1] {
		t.Errorf("disciplines did not round trip: %+v", gotDisciplines)
	}

	gotRecords, err := reloaded.GetRecords()
	if err != nil {
		t.Fatalf("GetRecords failed: %v", err)
	}
	if !gotRecords["2026-01-03"].Done("a") {
		t.Error("expected a complete on 2026-01-03")
	}
	if gotRecords["2026-01-03"].Done("b") {
		t.Error("expected b incomplete on 2026-01-03")
	}

	gotRewards, err := reloaded.GetRewards()
	if err != nil {
		t.Fatalf("GetRewards failed: %v", err)
	}
	if len(gotRewards) != 1 || gotRewards[0] != rewards[0] {
		t.Errorf("rewards did not round trip: %+v", gotRewards)
	}

	gotExchange, err := reloaded.GetExchange()
	if err != nil {
		t.Fatalf("GetExchange failed: %v", err)
	}
	if gotExchange != exchange {
		t.Errorf("exchange did not round trip: %+v", gotExchange)
	}
}

func TestJSONStoreLegacyDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ritual.json")

	// Legacy data missing active, points, rewards, and exchange
	legacy := `{
		"version": 1,
		"disciplines": [
			{"id": "a", "name": "Read", "created_at": "2025-06-01"},
			{"id": "b", "name": "Run", "points": 12, "active": false, "created_at": "2025-06-02"}
		],
		"records": {"2025-06-03": {"a": true}}
	}`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatalf("failed to write legacy store: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	disciplines, err := store.GetDisciplines()
	if err != nil {
		t.Fatalf("GetDisciplines failed: %v", err)
	}

	if !disciplines[0].Active {
		t.Error("missing active should default to true")
	}
	if disciplines[0].Points != 5 {
		t.Errorf("missing points should default to 5, got %d", disciplines[0].Points)
	}

	// Explicit values survive migration untouched
	if disciplines[1].Active {
		t.Error("explicit active=false should survive")
	}
	if disciplines[1].Points != 12 {
		t.Errorf("explicit points should survive, got %d", disciplines[1].Points)
	}

	rewards, err := store.GetRewards()
	if err != nil {
		t.Fatalf("GetRewards failed: %v", err)
	}
	if len(rewards) != 0 {
		t.Errorf("absent rewards should load empty, got %d", len(rewards))
	}

	exchange, err := store.GetExchange()
	if err != nil {
		t.Fatalf("GetExchange failed: %v", err)
	}
	if exchange != DefaultExchange() {
		t.Errorf("absent exchange should load defaults, got %+v", exchange)
	}
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected Load of missing file to fail")
	}
}
