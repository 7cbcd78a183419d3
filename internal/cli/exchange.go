package cli

import (
	"fmt"
)

type ExchangeCmd struct {
	Rate  int     `help:"Points per unit." default:"-1"`
	Value float64 `help:"Amount per rate." default:"-1"`
	Unit  string  `help:"Unit label (e.g. dollar, coffee, book)."`
}

func (c *ExchangeCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	current := tr.Exchange()

	// Show current settings when nothing is being changed
	if c.Rate < 0 && c.Value < 0 && c.Unit == "" {
		fmt.Printf("Exchange: %d ★ = %v %s\n", current.Rate, current.Value, current.Unit)
		fmt.Printf("Current balance converts to %s\n", current.FormatConverted(tr.Balance()))
		return nil
	}

	rate := current.Rate
	if c.Rate >= 0 {
		rate = c.Rate
	}
	value := current.Value
	if c.Value >= 0 {
		value = c.Value
	}
	unit := current.Unit
	if c.Unit != "" {
		unit = c.Unit
	}

	if err := tr.UpdateExchange(rate, value, unit); err != nil {
		return err
	}

	updated := tr.Exchange()
	fmt.Printf("Exchange updated: %d ★ = %v %s\n", updated.Rate, updated.Value, updated.Unit)
	fmt.Printf("Current balance converts to %s\n", updated.FormatConverted(tr.Balance()))
	return nil
}
