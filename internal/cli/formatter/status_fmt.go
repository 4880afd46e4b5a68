package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quarterplan/internal/service"
)

const capacityBarWidth = 10

// FormatStatus formats a StatusReport into a styled capacity dashboard.
func FormatStatus(report *service.StatusReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(report.TeamName), Dim(report.QuarterName)))
	b.WriteString(Dim(fmt.Sprintf("Starts %s, %d weeks", report.QuarterStart.Format("Jan 2, 2006"), report.NumWeeks)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n",
		RenderCapacityBar(report.TotalAllocated, report.TotalCapacity, capacityBarWidth),
		Badge(report.OverallBadge)))
	b.WriteString(Dim(fmt.Sprintf("SDE %s/%sw   AS %s/%sw",
		FormatWeeks(report.EngAllocated), FormatWeeks(report.EngCapacity),
		FormatWeeks(report.SciAllocated), FormatWeeks(report.SciCapacity))))
	b.WriteString("\n\n")

	b.WriteString(Header("Team"))
	b.WriteString("\n")
	memberRows := make([][]string, 0, len(report.Members))
	for _, m := range report.Members {
		memberRows = append(memberRows, []string{
			Bold(m.Member.Name),
			StyleFg.Render(m.Member.Role.ShortName()),
			RenderCapacityBar(m.Allocated, m.Member.Capacity, capacityBarWidth),
			Badge(m.Badge),
			Dim(strings.Join(m.Projects, ", ")),
		})
	}
	b.WriteString(RenderTable([]string{"NAME", "ROLE", "ALLOCATED", "", "PROJECTS"}, memberRows))
	b.WriteString("\n")

	b.WriteString(Header("Technical Projects"))
	b.WriteString("\n")
	projectRows := make([][]string, 0, len(report.Projects))
	for _, p := range report.Projects {
		projectRows = append(projectRows, []string{
			ProjectStyle(p.Color).Render("██ ") + Bold(p.Project.Name),
			RenderCapacityBar(p.TotalAllocated, p.Project.TotalEstimate(), capacityBarWidth),
			Badge(p.Badge),
			Dim(fmt.Sprintf("%d assigned", p.AssignedCount)),
		})
	}
	b.WriteString(RenderTable([]string{"PROJECT", "ALLOCATED", "", "TEAM"}, projectRows))
	b.WriteString("\n")

	if len(report.Roadmaps) > 0 {
		b.WriteString(Header("Roadmap"))
		b.WriteString("\n")
		roadmapRows := make([][]string, 0, len(report.Roadmaps))
		for _, r := range report.Roadmaps {
			roadmapRows = append(roadmapRows, []string{
				Bold(r.Project.Name),
				RenderCapacityBar(r.TotalAllocated, r.Project.TotalEstimate(), capacityBarWidth),
				Badge(r.Badge),
				Dim(fmt.Sprintf("%s to %s", r.Project.StartDate.Format("Jan 2"), r.Project.LaunchDate.Format("Jan 2"))),
			})
		}
		b.WriteString(RenderTable([]string{"PROJECT", "ALLOCATED", "", "DATES"}, roadmapRows))
		b.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		b.WriteString(Header("Issues"))
		b.WriteString("\n")
		for _, issue := range report.Issues {
			b.WriteString(StyleYellow.Render("  WARNING: "+issue.String()) + "\n")
		}
	}

	return b.String()
}
