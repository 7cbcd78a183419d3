package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
)

// TotalEarned sums the current point value of every completed entry in the
// ledger. Earnings use the discipline's current value, not the value at
// completion time, so editing a point value retroactively changes
// historical totals. Completions for deleted disciplines count nothing.
func (t *Tracker) TotalEarned() int {
	pointsByID := make(map[string]int, len(t.disciplines))
	for _, d := range t.disciplines {
		pointsByID[d.ID] = d.Points
	}

	total := 0
	for _, dayRecord := range t.records {
		for id, done := range dayRecord {
			if !done {
				continue
			}
			if points, ok := pointsByID[id]; ok {
				total += points
			}
		}
	}
	return total
}

// TotalSpent sums points spent across all journal entries.
func (t *Tracker) TotalSpent() int {
	total := 0
	for _, r := range t.rewards {
		total += r.PointsSpent
	}
	return total
}

// Balance is always computed live from the ledger and journal, never cached.
func (t *Tracker) Balance() int {
	return t.TotalEarned() - t.TotalSpent()
}

// Spend appends a reward entry dated today. It rejects non-positive
// amounts, blank descriptions, and spends exceeding the current balance.
func (t *Tracker) Spend(points int, description, image string) (models.Reward, error) {
	if points < 1 {
		return models.Reward{}, ErrNonPositiveSpend
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Reward{}, ErrEmptyDescription
	}
	if points > t.Balance() {
		return models.Reward{}, ErrInsufficientBalance
	}

	reward := models.Reward{
		ID:          uuid.New().String(),
		Date:        TodayKey(),
		PointsSpent: points,
		Description: description,
		Image:       image,
	}

	t.rewards = append(t.rewards, reward)
	if err := t.store.SaveRewards(t.rewards); err != nil {
		t.rewards = t.rewards[:len(t.rewards)-1]
		return models.Reward{}, err
	}

	return reward, nil
}

// Refund deletes a reward entry; its points are restored implicitly because
// the balance is recomputed from the journal. Unknown ids are a no-op.
func (t *Tracker) Refund(rewardID string) error {
	for i := range t.rewards {
		if t.rewards[i].ID == rewardID {
			t.rewards = append(t.rewards[:i], t.rewards[i+1:]...)
			return t.store.SaveRewards(t.rewards)
		}
	}
	return nil
}

// UpdateExchange replaces the conversion settings, clamping the rate and
// value to their minimums and trimming the unit label. Existing journal
// entries are untouched.
func (t *Tracker) UpdateExchange(rate int, value float64, unit string) error {
	if rate < 1 {
		rate = 1
	}
	if value < constants.MinExchangeValue {
		value = constants.MinExchangeValue
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = constants.DefaultExchangeUnit
	}

	t.exchange = models.Exchange{Rate: rate, Value: value, Unit: unit}
	return t.store.SaveExchange(t.exchange)
}
