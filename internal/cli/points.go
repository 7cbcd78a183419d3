package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type PointsCmd struct{}

func (c *PointsCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	earned := tr.TotalEarned()
	spent := tr.TotalSpent()
	balance := earned - spent
	exchange := tr.Exchange()

	fmt.Printf("Balance: %s ★\n", humanize.Comma(int64(balance)))
	fmt.Printf("  = %s to treat yourself\n\n", exchange.FormatConverted(balance))
	fmt.Printf("Earned:  %s ★\n", humanize.Comma(int64(earned)))
	fmt.Printf("Spent:   %s ★\n", humanize.Comma(int64(spent)))
	fmt.Printf("\nExchange: %d ★ = %v %s\n", exchange.Rate, exchange.Value, exchange.Unit)

	return nil
}
