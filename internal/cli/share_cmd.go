package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Share.ExportToFile(context.Background(), dir)
			if err != nil {
				return err
			}
			fmt.Printf("Exported plan to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the export into")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Share.ImportFromFile(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Imported plan. Sprint configuration was reset to defaults.")
			return nil
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Exchange plans as base64 share strings",
	}
	cmd.AddCommand(newShareEncodeCmd(app), newShareImportCmd(app))
	return cmd
}

func newShareEncodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Print the plan as a base64 share string",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := app.Share.EncodeShare(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		},
	}
}

func newShareImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import STRING",
		Short: "Import a plan from a base64 share string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Share.ImportShare(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Imported plan. Sprint configuration was reset to defaults.")
			return nil
		},
	}
}
