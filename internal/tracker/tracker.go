// Package tracker owns the discipline registry, the completion ledger, and
// the rewards journal. All collections are loaded once, held in memory, and
// fully re-persisted through the storage provider after every mutation.
package tracker

import (
	"fmt"
	"time"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
	"github.com/sablereed/ritual/internal/storage"
)

type Tracker struct {
	store       storage.Provider
	disciplines []models.Discipline
	records     map[string]models.DayRecord
	rewards     []models.Reward
	exchange    models.Exchange
}

// New loads every collection from the provider and returns a ready tracker.
// The provider must already be loaded.
func New(store storage.Provider) (*Tracker, error) {
	disciplines, err := store.GetDisciplines()
	if err != nil {
		return nil, fmt.Errorf("failed to load disciplines: %w", err)
	}
	records, err := store.GetRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	rewards, err := store.GetRewards()
	if err != nil {
		return nil, fmt.Errorf("failed to load rewards: %w", err)
	}
	exchange, err := store.GetExchange()
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange settings: %w", err)
	}

	if records == nil {
		records = make(map[string]models.DayRecord)
	}

	return &Tracker{
		store:       store,
		disciplines: disciplines,
		records:     records,
		rewards:     rewards,
		exchange:    exchange,
	}, nil
}

// TodayKey returns the date key for the current local calendar day.
func TodayKey() string {
	return time.Now().Format(constants.DateFormat)
}

// Disciplines returns all disciplines in registry insertion order.
func (t *Tracker) Disciplines() []models.Discipline {
	return t.disciplines
}

// ActiveDisciplines returns active disciplines in registry insertion order.
func (t *Tracker) ActiveDisciplines() []models.Discipline {
	var active []models.Discipline
	for _, d := range t.disciplines {
		if d.Active {
			active = append(active, d)
		}
	}
	return active
}

// Records exposes the full ledger for read-only derivation.
func (t *Tracker) Records() map[string]models.DayRecord {
	return t.records
}

// Rewards returns journal entries in insertion order.
func (t *Tracker) Rewards() []models.Reward {
	return t.rewards
}

// Exchange returns the current conversion settings.
func (t *Tracker) Exchange() models.Exchange {
	return t.exchange
}

// Discipline looks up a discipline by id.
func (t *Tracker) Discipline(id string) (models.Discipline, bool) {
	for _, d := range t.disciplines {
		if d.ID == id {
			return d, true
		}
	}
	return models.Discipline{}, false
}
