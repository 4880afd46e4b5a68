package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/quarterplan/internal/cli/formatter"
)

func newGridCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Show the allocation grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Plan.Grid(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGrid(report))
			return nil
		},
	}
}
