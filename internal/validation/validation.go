// Package validation checks the persisted collections for internal
// consistency. It reports problems; it never mutates or repairs.
package validation

import (
	"fmt"
	"time"

	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
)

// IssueType classifies a detected data problem
type IssueType string

const (
	IssueDuplicateID      IssueType = "duplicate_id"
	IssueEmptyName        IssueType = "empty_name"
	IssuePointsOutOfRange IssueType = "points_out_of_range"
	IssueInvalidDateKey   IssueType = "invalid_date_key"
	IssueOrphanedRecord   IssueType = "orphaned_record"
	IssueInvalidSpend     IssueType = "invalid_spend"
	IssueNegativeBalance  IssueType = "negative_balance"
	IssueInvalidExchange  IssueType = "invalid_exchange"
)

// Issue is a single detected problem
type Issue struct {
	Type        IssueType
	Description string
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if any check failed
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// Validator validates the persisted collections
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check against the loaded collections.
func (v *Validator) Validate(disciplines []models.Discipline, records map[string]models.DayRecord, rewards []models.Reward, exchange models.Exchange) Result {
	result := Result{Issues: []Issue{}}

	seen := make(map[string]bool, len(disciplines))
	known := make(map[string]bool, len(disciplines))
	totalPoints := make(map[string]int, len(disciplines))

	for _, d := range disciplines {
		if seen[d.ID] {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicateID,
				Description: fmt.Sprintf("Duplicate discipline id: %s", d.ID),
			})
		}
		seen[d.ID] = true
		known[d.ID] = true
		totalPoints[d.ID] = d.Points

		if d.Name == "" {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueEmptyName,
				Description: fmt.Sprintf("Discipline %s has an empty name", d.ID),
			})
		}
		if d.Points < constants.MinPoints || d.Points > constants.MaxPoints {
			result.Issues = append(result.Issues, Issue{
				Type: IssuePointsOutOfRange,
				Description: fmt.Sprintf("Discipline %q has points %d outside [%d, %d]",
					d.Name, d.Points, constants.MinPoints, constants.MaxPoints),
			})
		}
		if d.CreatedAt != "" && !isValidDateKey(d.CreatedAt) {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidDateKey,
				Description: fmt.Sprintf("Discipline %q has invalid created_at: %s", d.Name, d.CreatedAt),
			})
		}
	}

	earned := 0
	for dateKey, dayRecord := range records {
		if !isValidDateKey(dateKey) {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidDateKey,
				Description: fmt.Sprintf("Ledger has invalid date key: %s", dateKey),
			})
		}
		for id, done := range dayRecord {
			if !known[id] {
				result.Issues = append(result.Issues, Issue{
					Type:        IssueOrphanedRecord,
					Description: fmt.Sprintf("Ledger entry %s references unknown discipline id %s", dateKey, id),
				})
				continue
			}
			if done {
				earned += totalPoints[id]
			}
		}
	}

	spent := 0
	for _, r := range rewards {
		if r.PointsSpent < 1 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidSpend,
				Description: fmt.Sprintf("Reward %s has non-positive points_spent: %d", r.ID, r.PointsSpent),
			})
		}
		if !isValidDateKey(r.Date) {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidDateKey,
				Description: fmt.Sprintf("Reward %s has invalid date: %s", r.ID, r.Date),
			})
		}
		spent += r.PointsSpent
	}

	if spent > earned {
		result.Issues = append(result.Issues, Issue{
			Type: IssueNegativeBalance,
			Description: fmt.Sprintf("Journal spend (%d) exceeds all-time earnings (%d); balance is negative",
				spent, earned),
		})
	}

	if exchange.Rate < 1 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidExchange,
			Description: fmt.Sprintf("Exchange rate must be at least 1, got %d", exchange.Rate),
		})
	}
	if exchange.Value < constants.MinExchangeValue {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidExchange,
			Description: fmt.Sprintf("Exchange value must be at least %.2f, got %v", constants.MinExchangeValue, exchange.Value),
		})
	}

	return result
}

func isValidDateKey(dateKey string) bool {
	_, err := time.Parse(constants.DateFormat, dateKey)
	return err == nil
}
