package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/quarterplan/internal/cli/formatter"
	"github.com/alexanderramin/quarterplan/internal/domain"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the team roster and sprint configuration",
	}

	cmd.AddCommand(
		newTeamShowCmd(app),
		newTeamNameCmd(app),
		newTeamSprintCmd(app),
		newMemberAddCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newTeamShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show team configuration and roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := app.Team.Preferences(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header(prefs.TeamName))
			fmt.Printf("Sprints: %d weeks, anchored %s\n",
				prefs.SprintLengthWeeks, prefs.SprintAnchorDate)
			fmt.Printf("Default capacity: %s weeks/quarter\n\n",
				formatter.FormatWeeks(prefs.DefaultCapacity))

			if len(prefs.TeamMembers) == 0 {
				fmt.Println(formatter.Dim("No team members yet. Add one with `quarterplan team add`."))
				return nil
			}

			rows := make([][]string, 0, len(prefs.TeamMembers))
			for _, m := range prefs.TeamMembers {
				rows = append(rows, []string{
					formatter.Dim(shortID(m.ID)),
					formatter.Bold(m.Name),
					m.Role.ShortName(),
					formatter.FormatWeeks(m.Capacity) + "w",
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "ROLE", "CAPACITY"}, rows))
			return nil
		},
	}
}

func newTeamNameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "name NAME",
		Short: "Rename the team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			prefs, err := app.Team.Preferences(ctx)
			if err != nil {
				return err
			}
			prefs.TeamName = args[0]
			if err := app.Team.SavePreferences(ctx, prefs); err != nil {
				return err
			}
			fmt.Printf("Renamed team to %s\n", prefs.TeamName)
			return nil
		},
	}
}

func newTeamSprintCmd(app *App) *cobra.Command {
	var length int
	var anchor string

	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Configure sprint length and anchor date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			prefs, err := app.Team.Preferences(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("length") {
				prefs.SprintLengthWeeks = length
			}
			if cmd.Flags().Changed("anchor") {
				date, err := domain.ParseDate(anchor)
				if err != nil {
					return err
				}
				prefs.SprintAnchorDate = date
			}

			if err := app.Team.SavePreferences(ctx, prefs); err != nil {
				return err
			}
			fmt.Printf("Sprints: %d weeks, anchored %s\n",
				prefs.SprintLengthWeeks, prefs.SprintAnchorDate)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", domain.DefaultSprintLengthWeeks, "Sprint length in weeks (1-4)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "Sprint anchor date (YYYY-MM-DD)")

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var name, role string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !cmd.Flags().Changed("capacity") {
				prefs, err := app.Team.Preferences(ctx)
				if err != nil {
					return err
				}
				capacity = prefs.DefaultCapacity
			}

			member, err := app.Team.AddMember(ctx, name, domain.Role(role), capacity)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s, %sw) [%s]\n",
				member.Name, member.Role.ShortName(), formatter.FormatWeeks(member.Capacity), shortID(member.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEngineering), "Role (eng|sci)")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Capacity in weeks for the quarter")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var name, role string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "update MEMBER",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				member.Name = name
			}
			if cmd.Flags().Changed("role") {
				member.Role = domain.Role(role)
			}
			if cmd.Flags().Changed("capacity") {
				member.Capacity = capacity
			}

			if err := app.Team.UpdateMember(ctx, member); err != nil {
				return err
			}
			fmt.Printf("Updated %s (%s, %sw)\n",
				member.Name, member.Role.ShortName(), formatter.FormatWeeks(member.Capacity))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Role (eng|sci)")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Capacity in weeks for the quarter")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a team member from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			member, err := resolveMember(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.RemoveMember(ctx, member.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s. Existing allocations are kept and reported by `quarterplan status`.\n", member.Name)
			return nil
		},
	}
}
