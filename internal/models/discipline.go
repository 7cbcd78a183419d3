package models

// Discipline represents a recurring practice to track
type Discipline struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"` // YYYY-MM-DD format
}

// DayRecord maps discipline ID to completion for a single day.
// A missing ID reads as not completed.
type DayRecord map[string]bool

// Done reports whether the discipline was completed, defaulting to false
// for ids the record has never seen.
func (r DayRecord) Done(disciplineID string) bool {
	if r == nil {
		return false
	}
	return r[disciplineID]
}
