package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
)

type Store struct {
	Version     int                         `json:"version"`
	Disciplines []models.Discipline         `json:"disciplines"`
	Records     map[string]models.DayRecord `json:"records"`
	Rewards     []models.Reward             `json:"rewards"`
	Exchange    models.Exchange             `json:"exchange"`
}

// diskStore mirrors Store but keeps legacy-optional fields as pointers so
// absent values can be told apart from zero values during migration.
type diskStore struct {
	Version     int                         `json:"version"`
	Disciplines []diskDiscipline            `json:"disciplines"`
	Records     map[string]models.DayRecord `json:"records"`
	Rewards     []models.Reward             `json:"rewards"`
	Exchange    *models.Exchange            `json:"exchange"`
}

type diskDiscipline struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    *int   `json:"points"`
	Active    *bool  `json:"active"`
	CreatedAt string `json:"created_at"`
}

// DefaultExchange returns the documented exchange settings used when no
// settings have been persisted yet.
func DefaultExchange() models.Exchange {
	return models.Exchange{
		Rate:  constants.DefaultExchangeRate,
		Value: constants.DefaultExchangeValue,
		Unit:  constants.DefaultExchangeUnit,
	}
}

// JSONStore persists the whole store as one JSON file, rewriting it on
// every mutation. It is not safe for concurrent use by multiple
// goroutines without external synchronization, and running multiple
// processes against the same store path is not supported.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(storePath string) *JSONStore {
	return &JSONStore{
		path: storePath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:     1,
		Disciplines: []models.Discipline{},
		Records:     make(map[string]models.DayRecord),
		Rewards:     []models.Reward{},
		Exchange:    DefaultExchange(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ritual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	disk := &diskStore{}
	if err := json.Unmarshal(data, disk); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	s.store = migrate(disk)
	return nil
}

// migrate fills in defaults for fields missing from legacy data:
// disciplines without an active flag are active, disciplines without a
// points value are worth the default, and absent collections load empty.
func migrate(disk *diskStore) *Store {
	store := &Store{
		Version:     disk.Version,
		Disciplines: make([]models.Discipline, 0, len(disk.Disciplines)),
		Records:     disk.Records,
		Rewards:     disk.Rewards,
		Exchange:    DefaultExchange(),
	}

	for _, d := range disk.Disciplines {
		disc := models.Discipline{
			ID:        d.ID,
			Name:      d.Name,
			Points:    constants.DefaultPoints,
			Active:    true,
			CreatedAt: d.CreatedAt,
		}
		if d.Points != nil {
			disc.Points = *d.Points
		}
		if d.Active != nil {
			disc.Active = *d.Active
		}
		store.Disciplines = append(store.Disciplines, disc)
	}

	if store.Records == nil {
		store.Records = make(map[string]models.DayRecord)
	}
	if store.Rewards == nil {
		store.Rewards = []models.Reward{}
	}
	if disk.Exchange != nil {
		store.Exchange = *disk.Exchange
	}

	return store
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetDisciplines() ([]models.Discipline, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Disciplines, nil
}

func (s *JSONStore) SaveDisciplines(disciplines []models.Discipline) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Disciplines = disciplines
	return s.save()
}

func (s *JSONStore) GetRecords() (map[string]models.DayRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Records, nil
}

func (s *JSONStore) SaveRecords(records map[string]models.DayRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Records = records
	return s.save()
}

func (s *JSONStore) GetRewards() ([]models.Reward, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Rewards, nil
}

func (s *JSONStore) SaveRewards(rewards []models.Reward) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Rewards = rewards
	return s.save()
}

func (s *JSONStore) GetExchange() (models.Exchange, error) {
	if s.store == nil {
		return models.Exchange{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Exchange, nil
}

func (s *JSONStore) SaveExchange(exchange models.Exchange) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Exchange = exchange
	return s.save()
}

// GetStorePath returns the path to the underlying storage file.
func (s *JSONStore) GetStorePath() string {
	return s.path
}
