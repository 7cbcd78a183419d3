package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sablereed/ritual/internal/backup"
	"github.com/sablereed/ritual/internal/constants"
	"github.com/sablereed/ritual/internal/models"
	"github.com/sablereed/ritual/internal/storage"
	"github.com/sablereed/ritual/internal/tracker"
)

type Context struct {
	Store storage.Provider
}

// loadTracker loads the store and builds the in-memory tracker over it
func (ctx *Context) loadTracker() (*tracker.Tracker, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	return tracker.New(ctx.Store)
}

// PerformAutomaticBackup snapshots the store, warning instead of failing
// since a missed backup should never block the user.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetStorePath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveDiscipline matches a user-supplied reference against the registry:
// exact id first, then case-insensitive name.
func resolveDiscipline(tr *tracker.Tracker, ref string) (models.Discipline, error) {
	if d, ok := tr.Discipline(ref); ok {
		return d, nil
	}
	for _, d := range tr.Disciplines() {
		if strings.EqualFold(d.Name, ref) {
			return d, nil
		}
	}
	return models.Discipline{}, fmt.Errorf("no discipline matching %q", ref)
}

// confirm prompts on stdin and returns true for y/yes
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// parseDateArg accepts YYYY-MM-DD or the literal "today"
func parseDateArg(arg string) (string, error) {
	if arg == "" || arg == "today" {
		return tracker.TodayKey(), nil
	}
	if _, err := time.Parse(constants.DateFormat, arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}

// formatDisplayDate renders a date key as a long human date
func formatDisplayDate(dateKey string) string {
	d, err := time.Parse(constants.DateFormat, dateKey)
	if err != nil {
		return dateKey
	}
	return d.Format("Monday, January 2, 2006")
}

// formatShortDate renders a date key as "Jan 2"
func formatShortDate(dateKey string) string {
	d, err := time.Parse(constants.DateFormat, dateKey)
	if err != nil {
		return dateKey
	}
	return d.Format("Jan 2")
}
