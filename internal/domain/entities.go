package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// percentageEpsilon bounds floating point comparisons of assignment
// percentages.
const percentageEpsilon = 0.01

// TeamMember is an engineer or scientist on the roster.
type TeamMember struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role Role      `json:"role"`
	// Capacity in weeks for the quarter (e.g. 12 for full-time).
	Capacity float64 `json:"capacity"`
}

// NewTeamMember creates a roster entry with a fresh ID.
func NewTeamMember(name string, role Role, capacity float64) TeamMember {
	return TeamMember{
		ID:       uuid.New(),
		Name:     name,
		Role:     role,
		Capacity: capacity,
	}
}

// RoadmapProject is a high-level initiative with its own estimate and
// timeline.
type RoadmapProject struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	// Estimates in weeks, by role.
	EngEstimate float64      `json:"eng_estimate"`
	SciEstimate float64      `json:"sci_estimate"`
	StartDate   Date         `json:"start_date"`
	LaunchDate  Date         `json:"launch_date"`
	Color       ProjectColor `json:"color"`
	Notes       string       `json:"notes,omitempty"`
}

// NewRoadmapProject creates a roadmap project with a fresh ID.
func NewRoadmapProject(name string, engEstimate, sciEstimate float64, start, launch Date, color ProjectColor) RoadmapProject {
	return RoadmapProject{
		ID:          uuid.New(),
		Name:        name,
		EngEstimate: engEstimate,
		SciEstimate: sciEstimate,
		StartDate:   start,
		LaunchDate:  launch,
		Color:       color,
	}
}

// TotalEstimate returns engineering plus science estimated weeks.
func (p RoadmapProject) TotalEstimate() float64 {
	return p.EngEstimate + p.SciEstimate
}

// TechnicalProject is a unit of implementation work, optionally linked to a
// roadmap project. The link is a weak reference: it may dangle after the
// roadmap project is deleted, meaning "unlinked".
type TechnicalProject struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	RoadmapProjectID *uuid.UUID `json:"roadmap_project_id,omitempty"`
	EngEstimate      float64    `json:"eng_estimate"`
	SciEstimate      float64    `json:"sci_estimate"`
	// StartDate and ExpectedCompletion are derived from allocations once
	// any exist; see ledger.UpdateProjectDates.
	StartDate          Date   `json:"start_date"`
	ExpectedCompletion *Date  `json:"expected_completion,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// NewTechnicalProject creates a technical project with a fresh ID.
func NewTechnicalProject(name string, roadmapID *uuid.UUID, engEstimate, sciEstimate float64, start Date) TechnicalProject {
	return TechnicalProject{
		ID:               uuid.New(),
		Name:             name,
		RoadmapProjectID: roadmapID,
		EngEstimate:      engEstimate,
		SciEstimate:      sciEstimate,
		StartDate:        start,
	}
}

// TotalEstimate returns engineering plus science estimated weeks.
func (p TechnicalProject) TotalEstimate() float64 {
	return p.EngEstimate + p.SciEstimate
}

// Assignment ties a technical project to a share of one member-week. It is
// always embedded in an Allocation, never standalone.
type Assignment struct {
	TechnicalProjectID uuid.UUID `json:"technical_project_id"`
	// Percentage of the week, 0-100. Assignments in the same allocation
	// must sum to 100; see Allocation.IsValid.
	Percentage float64 `json:"percentage"`
}

// NewAssignment creates an assignment, rejecting percentages outside
// [0, 100].
func NewAssignment(technicalProjectID uuid.UUID, percentage float64) (Assignment, error) {
	if percentage < 0 || percentage > 100 {
		return Assignment{}, fmt.Errorf("percentage must be between 0 and 100, got %v", percentage)
	}
	return Assignment{
		TechnicalProjectID: technicalProjectID,
		Percentage:         percentage,
	}, nil
}

// Allocation records what one team member works on during one week. A week
// may be split across two projects by percentage. At most one allocation
// exists per (member, week) pair.
type Allocation struct {
	TeamMemberID uuid.UUID `json:"team_member_id"`
	// Monday of the week.
	WeekStartDate Date         `json:"week_start_date"`
	Assignments   []Assignment `json:"assignments"`
}

// NewAllocation creates an empty allocation for the given member and week.
func NewAllocation(teamMemberID uuid.UUID, weekStart Date) Allocation {
	return Allocation{
		TeamMemberID:  teamMemberID,
		WeekStartDate: weekStart,
	}
}

// TotalPercentage sums the assignment percentages.
func (a Allocation) TotalPercentage() float64 {
	var total float64
	for _, asn := range a.Assignments {
		total += asn.Percentage
	}
	return total
}

// IsEmpty reports whether the week is unallocated.
func (a Allocation) IsEmpty() bool { return len(a.Assignments) == 0 }

// IsFull reports whether the week is fully allocated.
func (a Allocation) IsFull() bool { return a.percentageEquals(100) }

// IsValid reports whether the assignments sum to 0 (empty) or exactly 100.
func (a Allocation) IsValid() bool {
	return a.IsEmpty() || a.percentageEquals(100)
}

func (a Allocation) percentageEquals(target float64) bool {
	diff := a.TotalPercentage() - target
	if diff < 0 {
		diff = -diff
	}
	return diff < percentageEpsilon
}
