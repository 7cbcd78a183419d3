package cli

import (
	"fmt"

	"github.com/sablereed/ritual/internal/tracker"
)

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodayCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	dateKey, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	active := tr.ActiveDisciplines()
	fmt.Printf("%s\n\n", formatDisplayDate(dateKey))

	if len(active) == 0 {
		fmt.Println("No active disciplines yet. Add one with 'ritual discipline add'.")
		return nil
	}

	done := 0
	for _, d := range active {
		mark := "[ ]"
		if tr.IsComplete(dateKey, d.ID) {
			mark = "[x]"
			done++
		}
		fmt.Printf("  %s %-30s ★ %d\n", mark, d.Name, d.Points)
	}

	fmt.Printf("\n%d/%d complete\n", done, len(active))
	if done == len(active) && dateKey == tracker.TodayKey() {
		fmt.Println("All done for today. Well earned!")
	}

	return nil
}
