package domain

// Role of a team member.
type Role string

const (
	RoleEngineering Role = "eng"
	RoleScience     Role = "sci"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[Role]bool{
	RoleEngineering: true,
	RoleScience:     true,
}

// ShortName returns the badge abbreviation for the role.
func (r Role) ShortName() string {
	switch r {
	case RoleEngineering:
		return "SDE"
	case RoleScience:
		return "AS"
	default:
		return "?"
	}
}

// ProjectColor is the visual color of a roadmap project in the grid.
type ProjectColor string

const (
	ColorBlue   ProjectColor = "blue"
	ColorGreen  ProjectColor = "green"
	ColorYellow ProjectColor = "yellow"
	ColorOrange ProjectColor = "orange"
	ColorRed    ProjectColor = "red"
	ColorPurple ProjectColor = "purple"
	ColorPink   ProjectColor = "pink"
	ColorTeal   ProjectColor = "teal"
	ColorIndigo ProjectColor = "indigo"
)

// ProjectColors lists every selectable color in palette order.
var ProjectColors = []ProjectColor{
	ColorBlue, ColorGreen, ColorYellow, ColorOrange, ColorRed,
	ColorPurple, ColorPink, ColorTeal, ColorIndigo,
}

// Hex returns the display hex value for the color.
func (c ProjectColor) Hex() string {
	switch c {
	case ColorBlue:
		return "#5AC8FA"
	case ColorGreen:
		return "#4ADE80"
	case ColorYellow:
		return "#FBBF24"
	case ColorOrange:
		return "#FB923C"
	case ColorRed:
		return "#F472B6"
	case ColorPurple:
		return "#A78BFA"
	case ColorPink:
		return "#E879F9"
	case ColorTeal:
		return "#2DD4BF"
	case ColorIndigo:
		return "#818CF8"
	default:
		return "#5AC8FA"
	}
}

// BadgeType classifies how closely an allocation tracks an estimate.
type BadgeType string

const (
	BadgeNeutral BadgeType = "neutral"
	BadgeSuccess BadgeType = "success"
	BadgeWarning BadgeType = "warning"
	BadgeError   BadgeType = "error"
)
