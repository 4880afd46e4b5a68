package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/quarterplan/internal/calendar"
	"github.com/alexanderramin/quarterplan/internal/cli/formatter"
	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/ledger"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the quarter plan and paint allocations",
	}

	cmd.AddCommand(
		newPlanQuarterCmd(app),
		newPlanClearCmd(app),
		newPlanPaintCmd(app),
		newPlanEraseCmd(app),
		newPlanSplitCmd(app),
		newRoadmapCmd(app),
		newTechCmd(app),
	)

	return cmd
}

func newPlanQuarterCmd(app *App) *cobra.Command {
	var year, quarter, weeks int

	cmd := &cobra.Command{
		Use:   "quarter",
		Short: "Reset the plan to a fresh quarter",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, err := calendar.QuarterStartDate(year, quarter)
			if err != nil {
				return err
			}

			state := domain.NewPlanState(fmt.Sprintf("Q%d %d", quarter, year), start, weeks)
			if err := app.Plan.Save(ctx, &state); err != nil {
				return err
			}
			fmt.Printf("Plan reset to %s starting %s (%d weeks)\n", state.QuarterName, start, weeks)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Quarter year")
	cmd.Flags().IntVar(&quarter, "quarter", 0, "Quarter number (1-4)")
	cmd.Flags().IntVar(&weeks, "weeks", 13, "Number of weeks in the quarter")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("quarter")

	return cmd
}

func newPlanClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plan.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("Plan cleared.")
			return nil
		},
	}
}

func newPlanPaintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paint MEMBER WEEK PROJECT",
		Short: "Assign a member's week fully to one technical project",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			week, err := resolveWeek(state, args[1])
			if err != nil {
				return err
			}
			project, err := resolveTechnicalProject(ctx, app, args[2])
			if err != nil {
				return err
			}

			if err := app.Plan.Paint(ctx, ledger.SelectTechnical(project.ID), member.ID, week); err != nil {
				return err
			}
			fmt.Printf("Painted %s, week of %s: %s\n", member.Name, week, project.Name)
			return nil
		},
	}
	return cmd
}

func newPlanEraseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "erase MEMBER WEEK",
		Short: "Clear a member's week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			week, err := resolveWeek(state, args[1])
			if err != nil {
				return err
			}

			if err := app.Plan.Paint(ctx, ledger.SelectNone(), member.ID, week); err != nil {
				return err
			}
			fmt.Printf("Erased %s, week of %s\n", member.Name, week)
			return nil
		},
	}
}

func newPlanSplitCmd(app *App) *cobra.Command {
	var pct float64

	cmd := &cobra.Command{
		Use:   "split MEMBER WEEK PROJECT1 PROJECT2",
		Short: "Split a member's week between two technical projects",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			week, err := resolveWeek(state, args[1])
			if err != nil {
				return err
			}
			p1, err := resolveTechnicalProject(ctx, app, args[2])
			if err != nil {
				return err
			}
			p2, err := resolveTechnicalProject(ctx, app, args[3])
			if err != nil {
				return err
			}

			first, err := domain.NewAssignment(p1.ID, pct)
			if err != nil {
				return err
			}
			second, err := domain.NewAssignment(p2.ID, 100-pct)
			if err != nil {
				return err
			}

			if err := app.Plan.SplitCell(ctx, member.ID, week, first, second); err != nil {
				return err
			}
			fmt.Printf("Split %s, week of %s: %s %s / %s %s\n",
				member.Name, week,
				p1.Name, formatter.FormatPercentage(first.Percentage),
				p2.Name, formatter.FormatPercentage(second.Percentage))
			return nil
		},
	}

	cmd.Flags().Float64Var(&pct, "first", 50, "Percentage for the first project (second gets the rest)")

	return cmd
}

func newRoadmapCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Manage roadmap projects",
	}
	cmd.AddCommand(newRoadmapAddCmd(app), newRoadmapRemoveCmd(app))
	return cmd
}

func newRoadmapAddCmd(app *App) *cobra.Command {
	var name, start, launch string
	var eng, sci float64
	color := colorFlag{color: domain.ColorBlue}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a roadmap project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return err
			}
			launchDate, err := domain.ParseDate(launch)
			if err != nil {
				return err
			}
			if !startDate.Before(launchDate) {
				return fmt.Errorf("start date %s must be before launch date %s", startDate, launchDate)
			}

			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			project := domain.NewRoadmapProject(name, eng, sci, startDate, launchDate, color.color)
			state.RoadmapProjects = append(state.RoadmapProjects, project)
			state.MarkModified()
			if err := app.Plan.Save(ctx, state); err != nil {
				return err
			}
			fmt.Printf("Added roadmap project %s [%s]\n", project.Name, shortID(project.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().Float64Var(&eng, "eng", 0, "Engineering estimate in weeks")
	cmd.Flags().Float64Var(&sci, "sci", 0, "Science estimate in weeks")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&launch, "launch", "", "Launch date (YYYY-MM-DD)")
	cmd.Flags().Var(&color, "color", "Grid color")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("launch")

	return cmd
}

func newRoadmapRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a roadmap project, unlinking its technical projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			project, err := resolveRoadmapProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			state.RemoveRoadmapProject(project.ID)
			if err := app.Plan.Save(ctx, state); err != nil {
				return err
			}
			fmt.Printf("Removed roadmap project %s\n", project.Name)
			return nil
		},
	}
}

func newTechCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tech",
		Short: "Manage technical projects",
	}
	cmd.AddCommand(newTechAddCmd(app), newTechRemoveCmd(app))
	return cmd
}

func newTechAddCmd(app *App) *cobra.Command {
	var name, roadmap, start string
	var eng, sci float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a technical project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return err
			}

			var roadmapID *uuid.UUID
			if roadmap != "" {
				rp, err := resolveRoadmapProject(ctx, app, roadmap)
				if err != nil {
					return err
				}
				roadmapID = &rp.ID
			}

			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			project := domain.NewTechnicalProject(name, roadmapID, eng, sci, startDate)
			state.TechnicalProjects = append(state.TechnicalProjects, project)
			state.MarkModified()
			if err := app.Plan.Save(ctx, state); err != nil {
				return err
			}
			fmt.Printf("Added technical project %s [%s]\n", project.Name, shortID(project.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&roadmap, "roadmap", "", "Roadmap project to link (name or ID)")
	cmd.Flags().Float64Var(&eng, "eng", 0, "Engineering estimate in weeks")
	cmd.Flags().Float64Var(&sci, "sci", 0, "Science estimate in weeks")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newTechRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a technical project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			project, err := resolveTechnicalProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			state, err := app.Plan.Current(ctx)
			if err != nil {
				return err
			}
			state.RemoveTechnicalProject(project.ID)
			if err := app.Plan.Save(ctx, state); err != nil {
				return err
			}
			fmt.Printf("Removed technical project %s. Its allocations stay until repainted.\n", project.Name)
			return nil
		},
	}
}
