package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/service"
)

// Wide enough for the "Jan 27" date labels in the header.
const gridCellWidth = 7

// FormatGrid renders the allocation grid: one row per member, one column
// per week, with sprint boundaries marked and a color legend underneath.
func FormatGrid(report *service.GridReport) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s — %s", report.TeamName, report.QuarterName)))
	b.WriteString("\n\n")

	nameWidth := len("MEMBER")
	for _, row := range report.Rows {
		if len(row.Member.Name) > nameWidth {
			nameWidth = len(row.Member.Name)
		}
	}

	// Week header: sprint separators before each sprint-opening week.
	b.WriteString(StyleHeader.Render(pad("MEMBER", nameWidth)))
	for _, week := range report.Weeks {
		b.WriteString(separator(week.IsSprintStart()))
		b.WriteString(StyleDim.Render(pad(fmt.Sprintf("W%d", week.WeekNumber), gridCellWidth)))
	}
	b.WriteString("\n")

	b.WriteString(StyleDim.Render(pad("", nameWidth)))
	for _, week := range report.Weeks {
		b.WriteString(separator(week.IsSprintStart()))
		b.WriteString(StyleDim.Render(pad(week.FormatDate(false), gridCellWidth)))
	}
	b.WriteString("\n")

	for _, row := range report.Rows {
		b.WriteString(StyleFg.Render(pad(row.Member.Name, nameWidth)))
		for i, cell := range row.Cells {
			b.WriteString(separator(report.Weeks[i].IsSprintStart()))
			b.WriteString(renderGridCell(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderLegend(report))
	return b.String()
}

func separator(sprintStart bool) string {
	if sprintStart {
		return StyleDim.Render("│")
	}
	return " "
}

func renderGridCell(cell service.GridCell) string {
	switch cell.Kind {
	case service.CellSingle:
		p := cell.Projects[0]
		return ProjectStyle(p.Color).Render(strings.Repeat("█", gridCellWidth))
	case service.CellSplit:
		half := gridCellWidth / 2
		var b strings.Builder
		for i, p := range cell.Projects {
			w := half
			if i == len(cell.Projects)-1 {
				w = gridCellWidth - half*(len(cell.Projects)-1)
			}
			b.WriteString(ProjectStyle(p.Color).Render(strings.Repeat("▒", w)))
		}
		return b.String()
	default:
		return StyleDim.Render(pad("·", gridCellWidth))
	}
}

// renderLegend lists each project appearing in the grid with its color
// swatch, sorted by name.
func renderLegend(report *service.GridReport) string {
	colors := make(map[string]domain.ProjectColor)
	for _, row := range report.Rows {
		for _, cell := range row.Cells {
			for _, p := range cell.Projects {
				colors[p.Name] = p.Color
			}
		}
	}
	if len(colors) == 0 {
		return Dim("No allocations yet. Paint cells with `quarterplan plan paint`.")
	}

	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		swatch := ProjectStyle(colors[name]).Render("██")
		parts = append(parts, swatch+" "+StyleFg.Render(name))
	}
	return strings.Join(parts, Dim("   "))
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
