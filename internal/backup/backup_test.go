package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sablereed/ritual/internal/storage"
)

func newTestStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ritual.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	storePath := newTestStore(t)
	manager := NewManager(storePath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Errorf("backup file should exist: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup should keep the store extension, got %s", backupPath)
	}

	original, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != string(copied) {
		t.Error("JSON backup should be a byte-for-byte copy")
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := manager.CreateBackup(); err == nil {
		t.Error("expected backup of missing store to fail")
	}
}

func TestListBackups(t *testing.T) {
	storePath := newTestStore(t)
	manager := NewManager(storePath)

	if backups, err := manager.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups yet, got %d (err %v)", len(backups), err)
	}

	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := manager.CreateBackup(); err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s should have nonzero size", b.Path)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := newTestStore(t)
	manager := NewManager(storePath)

	backupPath, err := manager.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live store after the snapshot
	if err := os.WriteFile(storePath, []byte(`{"version":1,"disciplines":[],"records":{"2026-01-01":{}},"rewards":[],"exchange":{"rate":100,"value":1,"unit":"dollar"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := manager.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := storage.NewJSONStore(storePath)
	if err := restored.Load(); err != nil {
		t.Fatalf("restored store should load: %v", err)
	}
	records, err := restored.GetRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Error("restore should roll back to the snapshot state")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	storePath := newTestStore(t)
	manager := NewManager(storePath)

	garbage := filepath.Join(filepath.Dir(storePath), "ritual-20260101-0000.json")
	if err := os.MkdirAll(manager.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	garbagePath := filepath.Join(manager.GetBackupDir(), filepath.Base(garbage))
	if err := os.WriteFile(garbagePath, []byte("not json at all"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := manager.RestoreBackup(garbagePath); err == nil {
		t.Error("expected restore of invalid backup to fail")
	}
}
