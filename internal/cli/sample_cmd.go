package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSampleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Replace the team and plan with built-in sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plan.LoadSample(context.Background()); err != nil {
				return err
			}
			fmt.Println("Loaded sample team and Q1 2025 plan. Try `quarterplan grid`.")
			return nil
		},
	}
}
