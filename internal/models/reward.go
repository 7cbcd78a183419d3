package models

// Reward is a journal entry recording points spent on a treat.
// Entries are immutable once created; deletion refunds the full amount.
type Reward struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD format
	PointsSpent int    `json:"points_spent"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"` // data URI
}
