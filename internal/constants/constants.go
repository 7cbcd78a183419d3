package constants

const (
	// DateFormat is the canonical date-key layout for ledger entries (local calendar day)
	DateFormat = "2006-01-02"

	// Discipline point values are clamped to [MinPoints, MaxPoints].
	// DefaultPoints is also the fill-in for legacy records missing the field.
	MinPoints     = 1
	MaxPoints     = 50
	DefaultPoints = 5

	// Exchange defaults: 100 points = 1 dollar
	DefaultExchangeRate  = 100
	DefaultExchangeValue = 1.0
	DefaultExchangeUnit  = "dollar"

	// MinExchangeValue is the smallest accepted per-rate amount
	MinExchangeValue = 0.01

	// StreakCeiling bounds the backward streak walk so a caller that
	// bypasses the non-empty-active-set guard can never loop forever
	StreakCeiling = 10000
)
