package models

import (
	"fmt"
	"strings"
)

// Exchange holds the points-to-currency conversion settings:
// every Rate points are worth Value of the named Unit.
type Exchange struct {
	Rate  int     `json:"rate"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Convert converts a point total to the configured real-world unit.
// A non-positive rate yields 0.
func (e Exchange) Convert(points int) float64 {
	if e.Rate <= 0 {
		return 0
	}
	return (float64(points) / float64(e.Rate)) * e.Value
}

// FormatConverted renders a point total as a display amount with a
// correctly pluralized unit, e.g. "2.50 dollars" or "1 box".
func (e Exchange) FormatConverted(points int) string {
	converted := e.Convert(points)
	unit := e.Unit
	if unit == "" {
		unit = "unit"
	}
	if converted != 1 {
		unit = Pluralize(unit)
	}
	return fmt.Sprintf("%s %s", FormatAmount(converted), unit)
}

// FormatAmount renders integral amounts without decimals and fractional
// amounts to exactly two decimal places.
func FormatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// Pluralize applies basic English pluralization to a unit label:
// trailing s/x/sh/ch take "es", consonant+y becomes "ies",
// everything else takes "s".
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if strings.HasSuffix(lower, "s") || strings.HasSuffix(lower, "x") ||
		strings.HasSuffix(lower, "sh") || strings.HasSuffix(lower, "ch") {
		return word + "es"
	}
	if strings.HasSuffix(lower, "y") && len(lower) >= 2 && !strings.ContainsRune("aeiou", rune(lower[len(lower)-2])) {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}
