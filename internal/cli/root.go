package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/quarterplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Team  service.TeamService
	Plan  service.PlanService
	Share service.ShareService
}

// NewRootCmd creates the top-level "quarterplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quarterplan",
		Short: "Quarterly resource planner for engineering teams",
	}

	root.AddCommand(
		newTeamCmd(app),
		newPlanCmd(app),
		newGridCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newShareCmd(app),
		newSampleCmd(app),
	)

	return root
}
