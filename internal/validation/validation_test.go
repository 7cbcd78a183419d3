package validation

import (
	"testing"

	"github.com/sablereed/ritual/internal/models"
)

func goodExchange() models.Exchange {
	return models.Exchange{Rate: 100, Value: 1, Unit: "dollar"}
}

func hasIssue(result Result, issueType IssueType) bool {
	for _, issue := range result.Issues {
		if issue.Type == issueType {
			return true
		}
	}
	return false
}

func TestValidateCleanData(t *testing.T) {
	disciplines := []models.Discipline{
		{ID: "a", Name: "Meditate", Points: 10, Active: true, CreatedAt: "2026-01-01"},
	}
	records := map[string]models.DayRecord{
		"2026-01-02": {"a": true},
	}
	rewards := []models.Reward{
		{ID: "r1", Date: "2026-01-03", PointsSpent: 5, Description: "Coffee"},
	}

	result := New().Validate(disciplines, records, rewards, goodExchange())
	if result.HasIssues() {
		t.Errorf("clean data should pass, got: %s", result.FormatReport())
	}
}

func TestValidateDetectsProblems(t *testing.T) {
	tests := []struct {
		name        string
		disciplines []models.Discipline
		records     map[string]models.DayRecord
		rewards     []models.Reward
		exchange    models.Exchange
		want        IssueType
	}{
		{
			name: "duplicate id",
			disciplines: []models.Discipline{
				{ID: "a", Name: "One", Points: 5},
				{ID: "a", Name: "Two", Points: 5},
			},
			exchange: goodExchange(),
			want:     IssueDuplicateID,
		},
		{
			name:        "empty name",
			disciplines: []models.Discipline{{ID: "a", Name: "", Points: 5}},
			exchange:    goodExchange(),
			want:        IssueEmptyName,
		},
		{
			name:        "points out of range",
			disciplines: []models.Discipline{{ID: "a", Name: "Big", Points: 99}},
			exchange:    goodExchange(),
			want:        IssuePointsOutOfRange,
		},
		{
			name:        "invalid ledger date key",
			disciplines: []models.Discipline{{ID: "a", Name: "One", Points: 5}},
			records:     map[string]models.DayRecord{"not-a-date": {"a": true}},
			exchange:    goodExchange(),
			want:        IssueInvalidDateKey,
		},
		{
			name:        "orphaned ledger entry",
			disciplines: []models.Discipline{{ID: "a", Name: "One", Points: 5}},
			records:     map[string]models.DayRecord{"2026-01-01": {"ghost": true}},
			exchange:    goodExchange(),
			want:        IssueOrphanedRecord,
		},
		{
			name:     "non-positive spend",
			rewards:  []models.Reward{{ID: "r", Date: "2026-01-01", PointsSpent: 0}},
			exchange: goodExchange(),
			want:     IssueInvalidSpend,
		},
		{
			name:        "negative balance",
			disciplines: []models.Discipline{{ID: "a", Name: "One", Points: 5}},
			records:     map[string]models.DayRecord{"2026-01-01": {"a": true}},
			rewards:     []models.Reward{{ID: "r", Date: "2026-01-02", PointsSpent: 10}},
			exchange:    goodExchange(),
			want:        IssueNegativeBalance,
		},
		{
			name:     "invalid exchange rate",
			exchange: models.Exchange{Rate: 0, Value: 1, Unit: "dollar"},
			want:     IssueInvalidExchange,
		},
		{
			name:     "invalid exchange value",
			exchange: models.Exchange{Rate: 100, Value: 0, Unit: "dollar"},
			want:     IssueInvalidExchange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().Validate(tt.disciplines, tt.records, tt.rewards, tt.exchange)
			if !hasIssue(result, tt.want) {
				t.Errorf("expected issue %s, got: %s", tt.want, result.FormatReport())
			}
		})
	}
}
