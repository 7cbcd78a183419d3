package cli

import (
	"fmt"
)

type CheckCmd struct {
	Discipline string `arg:"" help:"Discipline name or id."`
	Date       string `short:"d" help:"Date to mark (YYYY-MM-DD or 'today')." default:"today"`
	Undo       bool   `short:"u" help:"Mark incomplete instead."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	dateKey, err := parseDateArg(c.Date)
	if err != nil {
		return err
	}

	discipline, err := resolveDiscipline(tr, c.Discipline)
	if err != nil {
		return err
	}

	if err := tr.SetComplete(dateKey, discipline.ID, !c.Undo); err != nil {
		return err
	}

	if c.Undo {
		fmt.Printf("Unmarked %q for %s\n", discipline.Name, dateKey)
		return nil
	}
	fmt.Printf("Completed %q for %s (+%d ★)\n", discipline.Name, dateKey, discipline.Points)

	// Celebrate a perfect day
	active := tr.ActiveDisciplines()
	allDone := len(active) > 0
	for _, d := range active {
		if !tr.IsComplete(dateKey, d.ID) {
			allDone = false
			break
		}
	}
	if allDone {
		fmt.Println("Perfect day! Every discipline complete.")
	}

	return nil
}
