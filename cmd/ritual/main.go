package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sablereed/ritual/internal/cli"
	"github.com/sablereed/ritual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Store file path." type:"path" default:"~/.config/ritual/ritual.db"`

	Init       cli.InitCmd  `cmd:"" help:"Initialize ritual storage."`
	Tui        cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today      cli.TodayCmd `cmd:"" help:"Show today's checklist."`
	Check      cli.CheckCmd `cmd:"" help:"Mark a discipline complete (or undo it)."`
	Discipline struct {
		Add    cli.DisciplineAddCmd    `cmd:"" help:"Add a new discipline."`
		List   cli.DisciplineListCmd   `cmd:"" help:"List disciplines."`
		Points cli.DisciplinePointsCmd `cmd:"" help:"Change a discipline's point value."`
		Pause  cli.DisciplinePauseCmd  `cmd:"" help:"Pause a discipline."`
		Resume cli.DisciplineResumeCmd `cmd:"" help:"Resume a paused discipline."`
		Rm     cli.DisciplineRmCmd     `cmd:"" help:"Delete a discipline and its history."`
	} `cmd:"" help:"Manage disciplines."`
	Points   cli.PointsCmd   `cmd:"" help:"Show the points balance."`
	Spend    cli.SpendCmd    `cmd:"" help:"Spend points on a reward."`
	Journal  cli.JournalCmd  `cmd:"" help:"List the rewards journal."`
	Refund   cli.RefundCmd   `cmd:"" help:"Refund a journal entry."`
	Exchange cli.ExchangeCmd `cmd:"" help:"Show or change the exchange rate."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show completion statistics."`
	Chart    cli.ChartCmd    `cmd:"" help:"Plot cumulative points over time."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored data for consistency issues."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ritual"),
		kong.Description("Daily discipline tracker with a points economy"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Store, ".json") {
		store = storage.NewJSONStore(CLI.Store)
	} else {
		store = storage.NewSQLiteStore(CLI.Store)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
