package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sablereed/ritual/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS disciplines (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	points     INTEGER NOT NULL DEFAULT 5,
	active     INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	day           TEXT NOT NULL,
	discipline_id TEXT NOT NULL,
	done          INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (day, discipline_id)
);

CREATE TABLE IF NOT EXISTS rewards (
	id           TEXT PRIMARY KEY,
	day          TEXT NOT NULL,
	points_spent INTEGER NOT NULL,
	description  TEXT NOT NULL,
	image        TEXT NOT NULL DEFAULT '',
	position     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS exchange (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	rate  INTEGER NOT NULL,
	value REAL NOT NULL,
	unit  TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Exchange settings fall back to defaults until first saved; this
	// read just proves the table is usable.
	if _, err := s.GetExchange(); err != nil {
		return fmt.Errorf("failed to read exchange settings: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ritual init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema is idempotent, so opening older stores picks up new tables
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetDisciplines() ([]models.Discipline, error) {
	rows, err := s.db.Query(`
		SELECT id, name, points, active, created_at
		FROM disciplines ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	disciplines := []models.Discipline{}
	for rows.Next() {
		var d models.Discipline
		var active int
		if err := rows.Scan(&d.ID, &d.Name, &d.Points, &active, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Active = active != 0
		disciplines = append(disciplines, d)
	}

	return disciplines, rows.Err()
}

func (s *SQLiteStore) SaveDisciplines(disciplines []models.Discipline) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Full-collection rewrite keeps the write discipline identical to the
	// JSON provider: every mutation persists the entire collection.
	if _, err := tx.Exec("DELETE FROM disciplines"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO disciplines (id, name, points, active, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, d := range disciplines {
		active := 0
		if d.Active {
			active = 1
		}
		if _, err := stmt.Exec(d.ID, d.Name, d.Points, active, d.CreatedAt, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetRecords() (map[string]models.DayRecord, error) {
	rows, err := s.db.Query("SELECT day, discipline_id, done FROM records")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]models.DayRecord)
	for rows.Next() {
		var day, id string
		var done int
		if err := rows.Scan(&day, &id, &done); err != nil {
			return nil, err
		}
		if records[day] == nil {
			records[day] = models.DayRecord{}
		}
		records[day][id] = done != 0
	}

	return records, rows.Err()
}

func (s *SQLiteStore) SaveRecords(records map[string]models.DayRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO records (day, discipline_id, done) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for day, rec := range records {
		for id, done := range rec {
			val := 0
			if done {
				val = 1
			}
			if _, err := stmt.Exec(day, id, val); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetRewards() ([]models.Reward, error) {
	rows, err := s.db.Query(`
		SELECT id, day, points_spent, description, image
		FROM rewards ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rewards := []models.Reward{}
	for rows.Next() {
		var r models.Reward
		if err := rows.Scan(&r.ID, &r.Date, &r.PointsSpent, &r.Description, &r.Image); err != nil {
			return nil, err
		}
		rewards = append(rewards, r)
	}

	return rewards, rows.Err()
}

func (s *SQLiteStore) SaveRewards(rewards []models.Reward) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM rewards"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO rewards (id, day, points_spent, description, image, position)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range rewards {
		if _, err := stmt.Exec(r.ID, r.Date, r.PointsSpent, r.Description, r.Image, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetExchange() (models.Exchange, error) {
	row := s.db.QueryRow("SELECT rate, value, unit FROM exchange WHERE id = 1")

	var ex models.Exchange
	err := row.Scan(&ex.Rate, &ex.Value, &ex.Unit)
	if err == sql.ErrNoRows {
		return DefaultExchange(), nil
	}
	if err != nil {
		return models.Exchange{}, err
	}

	return ex, nil
}

func (s *SQLiteStore) SaveExchange(exchange models.Exchange) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO exchange (id, rate, value, unit)
		VALUES (1, ?, ?, ?)`,
		exchange.Rate, exchange.Value, exchange.Unit)
	return err
}

func (s *SQLiteStore) GetStorePath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
