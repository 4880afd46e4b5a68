package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/quarterplan/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the capacity dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Plan.Status(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStatus(report))
			return nil
		},
	}
}
