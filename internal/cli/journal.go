package cli

import (
	"fmt"
)

type JournalCmd struct{}

func (c *JournalCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	rewards := tr.Rewards()
	if len(rewards) == 0 {
		fmt.Println("No rewards yet. Spend some points with 'ritual spend'.")
		return nil
	}

	fmt.Println("Rewards journal (newest first):")
	for i := len(rewards) - 1; i >= 0; i-- {
		r := rewards[i]
		attachment := ""
		if r.Image != "" {
			attachment = "  [image]"
		}
		fmt.Printf("  %s  -%d ★  %s%s\n", formatDisplayDate(r.Date), r.PointsSpent, r.Description, attachment)
		fmt.Printf("      ID: %s\n", r.ID)
	}

	return nil
}

type RefundCmd struct {
	Reward string `arg:"" help:"Reward id to refund."`
	Yes    bool   `short:"y" help:"Skip confirmation."`
}

func (c *RefundCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm("Remove this journal entry? The points will be refunded")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Refund cancelled.")
			return nil
		}
	}

	if err := tr.Refund(c.Reward); err != nil {
		return err
	}

	fmt.Printf("Entry removed. Balance: %d ★\n", tr.Balance())
	return nil
}
