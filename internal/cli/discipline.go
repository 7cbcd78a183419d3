package cli

import (
	"fmt"

	"github.com/sablereed/ritual/internal/constants"
)

type DisciplineAddCmd struct {
	Name   string `arg:"" help:"Discipline name."`
	Points int    `short:"p" help:"Points earned per completion (1-50)." default:"5"`
}

func (c *DisciplineAddCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	discipline, err := tr.CreateDiscipline(c.Name, c.Points)
	if err != nil {
		return err
	}

	fmt.Printf("Added discipline: %s (★ %d, ID: %s)\n", discipline.Name, discipline.Points, discipline.ID)
	return nil
}

type DisciplineListCmd struct {
	ActiveOnly bool `help:"Show only active disciplines."`
}

func (c *DisciplineListCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	disciplines := tr.Disciplines()
	if len(disciplines) == 0 {
		fmt.Println("No disciplines found")
		return nil
	}

	fmt.Println("Disciplines:")
	for _, d := range disciplines {
		if c.ActiveOnly && !d.Active {
			continue
		}

		status := "active"
		if !d.Active {
			status = "paused"
		}
		fmt.Printf("  [%s] %s - ★ %d (since %s)\n", status, d.Name, d.Points, d.CreatedAt)
		fmt.Printf("      ID: %s\n", d.ID)
	}

	return nil
}

type DisciplinePointsCmd struct {
	Discipline string `arg:"" help:"Discipline name or id."`
	Points     int    `arg:"" help:"New point value (1-50)."`
}

func (c *DisciplinePointsCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	discipline, err := resolveDiscipline(tr, c.Discipline)
	if err != nil {
		return err
	}

	if err := tr.SetPoints(discipline.ID, c.Points); err != nil {
		return err
	}

	updated, _ := tr.Discipline(discipline.ID)
	if updated.Points != c.Points {
		fmt.Printf("Points clamped to [%d, %d]: %q is now worth ★ %d\n",
			constants.MinPoints, constants.MaxPoints, updated.Name, updated.Points)
		return nil
	}
	fmt.Printf("%q is now worth ★ %d\n", updated.Name, updated.Points)
	return nil
}

type DisciplinePauseCmd struct {
	Discipline string `arg:"" help:"Discipline name or id."`
}

func (c *DisciplinePauseCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Discipline, false)
}

type DisciplineResumeCmd struct {
	Discipline string `arg:"" help:"Discipline name or id."`
}

func (c *DisciplineResumeCmd) Run(ctx *Context) error {
	return setActive(ctx, c.Discipline, true)
}

func setActive(ctx *Context, ref string, active bool) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	discipline, err := resolveDiscipline(tr, ref)
	if err != nil {
		return err
	}

	if err := tr.SetActive(discipline.ID, active); err != nil {
		return err
	}

	if active {
		fmt.Printf("Resumed %q\n", discipline.Name)
	} else {
		fmt.Printf("Paused %q (history kept, excluded from analytics)\n", discipline.Name)
	}
	return nil
}

type DisciplineRmCmd struct {
	Discipline string `arg:"" help:"Discipline name or id."`
	Yes        bool   `short:"y" help:"Skip confirmation."`
}

func (c *DisciplineRmCmd) Run(ctx *Context) error {
	tr, err := ctx.loadTracker()
	if err != nil {
		return err
	}

	discipline, err := resolveDiscipline(tr, c.Discipline)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Permanently delete %q? This also removes its history", discipline.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := tr.DeleteDiscipline(discipline.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q and its completion history\n", discipline.Name)
	return nil
}
