package cli

import (
	"fmt"

	"github.com/sablereed/ritual/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	disciplines, err := ctx.Store.GetDisciplines()
	if err != nil {
		return fmt.Errorf("failed to get disciplines: %w", err)
	}
	records, err := ctx.Store.GetRecords()
	if err != nil {
		return fmt.Errorf("failed to get records: %w", err)
	}
	rewards, err := ctx.Store.GetRewards()
	if err != nil {
		return fmt.Errorf("failed to get rewards: %w", err)
	}
	exchange, err := ctx.Store.GetExchange()
	if err != nil {
		return fmt.Errorf("failed to get exchange: %w", err)
	}

	v := validation.New()
	result := v.Validate(disciplines, records, rewards, exchange)

	fmt.Print(result.FormatReport())
	if result.HasIssues() {
		return fmt.Errorf("validation found %d issue(s)", len(result.Issues))
	}

	return nil
}
