package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/quarterplan/internal/calendar"
	"github.com/alexanderramin/quarterplan/internal/domain"
)

// resolveMember matches a roster entry by exact name (case-insensitive),
// full UUID, or unambiguous UUID prefix.
func resolveMember(ctx context.Context, app *App, input string) (domain.TeamMember, error) {
	if input == "" {
		return domain.TeamMember{}, fmt.Errorf("member is required")
	}

	prefs, err := app.Team.Preferences(ctx)
	if err != nil {
		return domain.TeamMember{}, err
	}

	for _, m := range prefs.TeamMembers {
		if strings.EqualFold(m.Name, input) {
			return m, nil
		}
	}

	var matches []domain.TeamMember
	for _, m := range prefs.TeamMembers {
		if strings.HasPrefix(m.ID.String(), strings.ToLower(input)) {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return domain.TeamMember{}, fmt.Errorf("team member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.TeamMember{}, fmt.Errorf("member ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTechnicalProject matches a technical project by exact name
// (case-insensitive), full UUID, or unambiguous UUID prefix.
func resolveTechnicalProject(ctx context.Context, app *App, input string) (domain.TechnicalProject, error) {
	if input == "" {
		return domain.TechnicalProject{}, fmt.Errorf("project is required")
	}

	state, err := app.Plan.Current(ctx)
	if err != nil {
		return domain.TechnicalProject{}, err
	}

	for _, p := range state.TechnicalProjects {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var matches []domain.TechnicalProject
	for _, p := range state.TechnicalProjects {
		if strings.HasPrefix(p.ID.String(), strings.ToLower(input)) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return domain.TechnicalProject{}, fmt.Errorf("technical project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.TechnicalProject{}, fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveRoadmapProject matches a roadmap project by exact name or UUID
// prefix, same rules as resolveTechnicalProject.
func resolveRoadmapProject(ctx context.Context, app *App, input string) (domain.RoadmapProject, error) {
	state, err := app.Plan.Current(ctx)
	if err != nil {
		return domain.RoadmapProject{}, err
	}

	for _, p := range state.RoadmapProjects {
		if strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}

	var matches []domain.RoadmapProject
	for _, p := range state.RoadmapProjects {
		if strings.HasPrefix(p.ID.String(), strings.ToLower(input)) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return domain.RoadmapProject{}, fmt.Errorf("roadmap project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.RoadmapProject{}, fmt.Errorf("roadmap ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveWeek turns "W3" / "3" (week number within the quarter) or a
// YYYY-MM-DD date into the start date of the plan week column containing
// it. Week columns run from QuarterStartDate in 7-day steps, so a date is
// matched against the columns rather than snapped to a calendar Monday.
func resolveWeek(state *domain.PlanState, input string) (domain.Date, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(input), "W")
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > state.NumWeeks {
			return domain.Date{}, fmt.Errorf("week number must be 1-%d, got %d", state.NumWeeks, n)
		}
		return state.QuarterStartDate.AddWeeks(n - 1), nil
	}

	date, err := domain.ParseDate(input)
	if err != nil {
		return domain.Date{}, fmt.Errorf("week must be a number or YYYY-MM-DD date: %w", err)
	}
	for i := 0; i < state.NumWeeks; i++ {
		weekStart := state.QuarterStartDate.AddWeeks(i)
		if calendar.DateInWeek(date, weekStart) {
			return weekStart, nil
		}
	}
	return domain.Date{}, fmt.Errorf("date %s is outside %s (weeks begin %s)",
		date, state.QuarterName, state.QuarterStartDate)
}

// parseColor validates a project color name.
func parseColor(input string) (domain.ProjectColor, error) {
	if input == "" {
		return domain.ColorBlue, nil
	}
	c := domain.ProjectColor(strings.ToLower(input))
	for _, valid := range domain.ProjectColors {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid color %q (valid: blue green yellow orange red purple pink teal indigo)", input)
}

// colorFlag is a pflag.Value for project colors, rejecting unknown names
// at flag-parse time.
type colorFlag struct {
	color domain.ProjectColor
}

var _ pflag.Value = (*colorFlag)(nil)

func (f *colorFlag) String() string { return string(f.color) }
func (f *colorFlag) Type() string   { return "color" }

func (f *colorFlag) Set(value string) error {
	c, err := parseColor(value)
	if err != nil {
		return err
	}
	f.color = c
	return nil
}

// shortID renders the first 8 characters of a UUID for display.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
