package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
)

func clampPoints(points int) int {
	if points < constants.MinPoints {
		return constants.MinPoints
	}
	if points > constants.MaxPoints {
		return constants.MaxPoints
	}
	return points
}

// CreateDiscipline registers a new active discipline worth the given points.
// The name is trimmed and must be non-empty; points are clamped to the
// allowed range.
func (t *Tracker) CreateDiscipline(name string, points int) (models.Discipline, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Discipline{}, ErrEmptyName
	}

	discipline := models.Discipline{
		ID:        uuid.New().String(),
		Name:      name,
		Points:    clampPoints(points),
		Active:    true,
		CreatedAt: TodayKey(),
	}

	t.disciplines = append(t.disciplines, discipline)
	if err := t.store.SaveDisciplines(t.disciplines); err != nil {
		t.disciplines = t.disciplines[:len(t.disciplines)-1]
		return models.Discipline{}, err
	}

	return discipline, nil
}

// SetActive toggles a discipline's active flag. Unknown ids are a no-op.
func (t *Tracker) SetActive(id string, active bool) error {
	for i := range t.disciplines {
		if t.disciplines[i].ID == id {
			t.disciplines[i].Active = active
			return t.store.SaveDisciplines(t.disciplines)
		}
	}
	return nil
}

// SetPoints updates a discipline's point value, clamped to the allowed
// range. Unknown ids are a no-op.
func (t *Tracker) SetPoints(id string, points int) error {
	for i := range t.disciplines {
		if t.disciplines[i].ID == id {
			t.disciplines[i].Points = clampPoints(points)
			return t.store.SaveDisciplines(t.disciplines)
		}
	}
	return nil
}

// DeleteDiscipline removes a discipline and cascades into the ledger,
// erasing its completion history. Irreversible. Unknown ids are a no-op.
func (t *Tracker) DeleteDiscipline(id string) error {
	index := -1
	for i := range t.disciplines {
		if t.disciplines[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	removed := t.disciplines[index]
	t.disciplines = append(t.disciplines[:index], t.disciplines[index+1:]...)
	if err := t.store.SaveDisciplines(t.disciplines); err != nil {
		t.disciplines = append(t.disciplines[:index], append([]models.Discipline{removed}, t.disciplines[index:]...)...)
		return err
	}

	erased := make(map[string]bool)
	for dateKey := range t.records {
		if done, ok := t.records[dateKey][id]; ok {
			erased[dateKey] = done
			delete(t.records[dateKey], id)
		}
	}
	if err := t.store.SaveRecords(t.records); err != nil {
		// Keep memory consistent: restore both collections so the
		// registry and ledger never disagree about the discipline.
		for dateKey, done := range erased {
			t.records[dateKey][id] = done
		}
		t.disciplines = append(t.disciplines[:index], append([]models.Discipline{removed}, t.disciplines[index:]...)...)
		return err
	}
	return nil
}
