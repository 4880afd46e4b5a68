package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// Terminal palette for chrome (headers, rules, dim text).
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ProjectStyle returns a style rendering in the project's assigned color.
func ProjectStyle(c domain.ProjectColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// BadgeStyle returns the style for a capacity badge.
func BadgeStyle(b domain.BadgeType) lipgloss.Style {
	switch b {
	case domain.BadgeSuccess:
		return StyleGreen
	case domain.BadgeWarning:
		return StyleYellow
	case domain.BadgeError:
		return StyleRed
	default:
		return StyleDim
	}
}

// Badge returns a colored capacity indicator such as "● ON TARGET".
func Badge(b domain.BadgeType) string {
	switch b {
	case domain.BadgeSuccess:
		return StyleGreen.Render("● ON TARGET")
	case domain.BadgeWarning:
		return StyleYellow.Render("● CHECK")
	case domain.BadgeError:
		return StyleRed.Render("● OFF TARGET")
	default:
		return StyleDim.Render("● UNPLANNED")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
