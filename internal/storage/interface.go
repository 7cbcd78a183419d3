package storage

import "github.com/sablereed/ritual/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Disciplines (insertion order is preserved)
	GetDisciplines() ([]models.Discipline, error)
	SaveDisciplines([]models.Discipline) error

	// Records: date-key -> discipline id -> completed
	GetRecords() (map[string]models.DayRecord, error)
	SaveRecords(map[string]models.DayRecord) error

	// Rewards journal (insertion order is preserved)
	GetRewards() ([]models.Reward, error)
	SaveRewards([]models.Reward) error

	// Exchange settings
	GetExchange() (models.Exchange, error)
	SaveExchange(models.Exchange) error

	// Utils
	GetStorePath() string
}
