package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/calendar"
	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/ledger"
)

// TeamService manages the long-lived preferences document: team identity,
// roster, and sprint configuration.
type TeamService interface {
	// Preferences returns the stored preferences, or defaults when none
	// have been saved yet.
	Preferences(ctx context.Context) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs *domain.Preferences) error
	AddMember(ctx context.Context, name string, role domain.Role, capacity float64) (domain.TeamMember, error)
	UpdateMember(ctx context.Context, member domain.TeamMember) error
	// RemoveMember deletes a roster entry. Allocations referencing the
	// member are deliberately left in place.
	RemoveMember(ctx context.Context, id uuid.UUID) error
}

// PlanService manages the quarter-scoped plan document and routes cell
// mutations through the allocation ledger.
type PlanService interface {
	// Current returns the stored plan, seeding an empty plan for the next
	// upcoming quarter when none exists.
	Current(ctx context.Context) (*domain.PlanState, error)
	Save(ctx context.Context, state *domain.PlanState) error
	Clear(ctx context.Context) error
	// LoadSample replaces both documents with the built-in sample data.
	LoadSample(ctx context.Context) error
	// Paint applies the brush to one cell and persists the plan.
	Paint(ctx context.Context, sel ledger.Selection, memberID uuid.UUID, weekStart domain.Date) error
	// SplitCell replaces one cell with a two-project split week.
	SplitCell(ctx context.Context, memberID uuid.UUID, weekStart domain.Date, first, second domain.Assignment) error
	Grid(ctx context.Context) (*GridReport, error)
	Status(ctx context.Context) (*StatusReport, error)
}

// ShareService moves plan snapshots across the trust boundary: files and
// base64 share strings. Imports are validated and rejected on any
// referential integrity violation; nothing is repaired.
type ShareService interface {
	// ExportToFile writes the snapshot to dir using the derived filename
	// and returns the full path.
	ExportToFile(ctx context.Context, dir string) (string, error)
	ImportFromFile(ctx context.Context, path string) error
	EncodeShare(ctx context.Context) (string, error)
	ImportShare(ctx context.Context, encoded string) error
}

// GridCellKind discriminates grid cell rendering variants.
type GridCellKind string

const (
	CellEmpty  GridCellKind = "empty"
	CellSingle GridCellKind = "single"
	CellSplit  GridCellKind = "split"
)

// GridCellProject is one project's share of a cell.
type GridCellProject struct {
	Name       string
	Color      domain.ProjectColor
	Percentage float64
}

// GridCell is the computed rendering of one member-week.
type GridCell struct {
	Kind     GridCellKind
	Projects []GridCellProject
}

// GridRow is one member's row across the quarter.
type GridRow struct {
	Member    domain.TeamMember
	Allocated float64
	Cells     []GridCell
}

// GridReport is the full allocation grid for display.
type GridReport struct {
	TeamName    string
	QuarterName string
	Weeks       []calendar.QuarterWeek
	Rows        []GridRow
}

// MemberStatus is one roster entry's capacity summary.
type MemberStatus struct {
	Member    domain.TeamMember
	Allocated float64
	Badge     domain.BadgeType
	Projects  []string
}

// ProjectStatus is one technical project's allocation summary.
type ProjectStatus struct {
	Project        domain.TechnicalProject
	Color          domain.ProjectColor
	EngAllocated   float64
	SciAllocated   float64
	TotalAllocated float64
	Badge          domain.BadgeType
	AssignedCount  int
}

// RoadmapStatus is one roadmap project's rolled-up summary.
type RoadmapStatus struct {
	Project        domain.RoadmapProject
	EngAllocated   float64
	SciAllocated   float64
	TotalAllocated float64
	Badge          domain.BadgeType
}

// StatusReport is the plan-wide capacity summary.
type StatusReport struct {
	TeamName     string
	QuarterName  string
	QuarterStart domain.Date
	NumWeeks     int

	EngCapacity   float64
	SciCapacity   float64
	TotalCapacity float64

	EngAllocated   float64
	SciAllocated   float64
	TotalAllocated float64
	OverallBadge   domain.BadgeType

	Members  []MemberStatus
	Projects []ProjectStatus
	Roadmaps []RoadmapStatus
	Issues   []domain.PlanIssue
}
