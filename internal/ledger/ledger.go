// Package ledger implements allocation bookkeeping over a PlanState: cell
// lookup and mutation, percentage aggregation, and derived project dates.
package ledger

import (
	"sort"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/calendar"
	"github.com/alexanderramin/quarterplan/internal/domain"
)

// cellKey is the natural key of an allocation: one member, one week.
type cellKey struct {
	memberID uuid.UUID
	week     domain.Date
}

// Ledger wraps a PlanState with a (member, week) index for O(1) cell
// lookup. All allocation mutations must go through the ledger so the index
// stays consistent with the backing slice.
type Ledger struct {
	state *domain.PlanState
	cells map[cellKey]int
}

// New builds a ledger over the given plan state.
func New(state *domain.PlanState) *Ledger {
	l := &Ledger{state: state}
	l.reindex()
	return l
}

// State returns the backing plan state.
func (l *Ledger) State() *domain.PlanState { return l.state }

func (l *Ledger) reindex() {
	l.cells = make(map[cellKey]int, len(l.state.Allocations))
	for i, a := range l.state.Allocations {
		l.cells[cellKey{a.TeamMemberID, a.WeekStartDate}] = i
	}
}

// Allocation returns the allocation for one member-week cell, if any.
func (l *Ledger) Allocation(memberID uuid.UUID, weekStart domain.Date) (*domain.Allocation, bool) {
	i, ok := l.cells[cellKey{memberID, weekStart}]
	if !ok {
		return nil, false
	}
	return &l.state.Allocations[i], true
}

// ReplaceCell is the single mutation primitive underlying assign, clear,
// and split: it removes any existing allocation at the cell and, when
// assignments is non-empty, inserts a new one. Empty allocations are never
// persisted. The percentage-sum invariant is not enforced here; it is
// advisory and checked by Allocation.IsValid / domain.ValidatePlan.
//
// Returns the IDs of every project added to or removed from the cell, for
// date propagation.
func (l *Ledger) ReplaceCell(memberID uuid.UUID, weekStart domain.Date, assignments []domain.Assignment) []uuid.UUID {
	touched := make(map[uuid.UUID]bool)

	if prev, ok := l.Allocation(memberID, weekStart); ok {
		for _, asn := range prev.Assignments {
			touched[asn.TechnicalProjectID] = true
		}
	}

	key := cellKey{memberID, weekStart}
	if i, ok := l.cells[key]; ok {
		l.state.Allocations = append(l.state.Allocations[:i], l.state.Allocations[i+1:]...)
	}

	if len(assignments) > 0 {
		alloc := domain.NewAllocation(memberID, weekStart)
		alloc.Assignments = append(alloc.Assignments, assignments...)
		l.state.Allocations = append(l.state.Allocations, alloc)
		for _, asn := range assignments {
			touched[asn.TechnicalProjectID] = true
		}
	}

	l.reindex()
	l.state.MarkModified()

	ids := make([]uuid.UUID, 0, len(touched))
	for id := range touched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// ProjectAllocatedWeeks sums allocated weeks across every assignment
// referencing the project. A week at 50% contributes 0.5.
func (l *Ledger) ProjectAllocatedWeeks(projectID uuid.UUID) float64 {
	var total float64
	for _, alloc := range l.state.Allocations {
		for _, asn := range alloc.Assignments {
			if asn.TechnicalProjectID == projectID {
				total += asn.Percentage / 100
			}
		}
	}
	return total
}

// MemberAllocatedWeeks sums a member's allocated weeks across the quarter.
func (l *Ledger) MemberAllocatedWeeks(memberID uuid.UUID) float64 {
	var total float64
	for _, alloc := range l.state.Allocations {
		if alloc.TeamMemberID == memberID {
			total += alloc.TotalPercentage() / 100
		}
	}
	return total
}

// RoleLookup resolves a member ID to a role. Role data lives in
// Preferences, not PlanState, so aggregation by role takes the resolver as
// an argument instead of reaching across documents. An unresolvable ID
// (deleted member) contributes nothing.
type RoleLookup func(memberID uuid.UUID) (domain.Role, bool)

// ProjectAllocatedByRole splits a technical project's allocated weeks by
// member role, returning (engineering, science, total).
func (l *Ledger) ProjectAllocatedByRole(projectID uuid.UUID, roleOf RoleLookup) (eng, sci, total float64) {
	for _, alloc := range l.state.Allocations {
		role, ok := roleOf(alloc.TeamMemberID)
		if !ok {
			continue
		}
		for _, asn := range alloc.Assignments {
			if asn.TechnicalProjectID != projectID {
				continue
			}
			weeks := asn.Percentage / 100
			switch role {
			case domain.RoleEngineering:
				eng += weeks
			case domain.RoleScience:
				sci += weeks
			}
		}
	}
	return eng, sci, eng + sci
}

// RoadmapAllocatedByRole aggregates allocated weeks over every technical
// project linked to the roadmap project, split by role.
func (l *Ledger) RoadmapAllocatedByRole(roadmapID uuid.UUID, roleOf RoleLookup) (eng, sci, total float64) {
	for i := range l.state.TechnicalProjects {
		tp := &l.state.TechnicalProjects[i]
		if tp.RoadmapProjectID == nil || *tp.RoadmapProjectID != roadmapID {
			continue
		}
		e, s, _ := l.ProjectAllocatedByRole(tp.ID, roleOf)
		eng += e
		sci += s
	}
	return eng, sci, eng + sci
}

// TotalAllocatedByRole sums all allocated weeks in the plan by role.
func (l *Ledger) TotalAllocatedByRole(roleOf RoleLookup) (eng, sci, total float64) {
	for _, alloc := range l.state.Allocations {
		role, ok := roleOf(alloc.TeamMemberID)
		if !ok {
			continue
		}
		weeks := alloc.TotalPercentage() / 100
		switch role {
		case domain.RoleEngineering:
			eng += weeks
		case domain.RoleScience:
			sci += weeks
		}
	}
	return eng, sci, eng + sci
}

// AssignedMembers returns the deduplicated, sorted set of member IDs with
// at least one assignment to the project.
func (l *Ledger) AssignedMembers(projectID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, alloc := range l.state.Allocations {
		for _, asn := range alloc.Assignments {
			if asn.TechnicalProjectID == projectID && !seen[alloc.TeamMemberID] {
				seen[alloc.TeamMemberID] = true
				ids = append(ids, alloc.TeamMemberID)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// AssignedProjectNames returns the deduplicated names of technical
// projects a member is assigned to, in roster scan order.
func (l *Ledger) AssignedProjectNames(memberID uuid.UUID) []string {
	seen := make(map[uuid.UUID]bool)
	var names []string
	for _, alloc := range l.state.Allocations {
		if alloc.TeamMemberID != memberID {
			continue
		}
		for _, asn := range alloc.Assignments {
			if seen[asn.TechnicalProjectID] {
				continue
			}
			seen[asn.TechnicalProjectID] = true
			if p, ok := l.state.TechnicalProject(asn.TechnicalProjectID); ok {
				names = append(names, p.Name)
			}
		}
	}
	return names
}

// AllocationDateRange returns the earliest and latest allocated week start
// for the project. ok is false when the project has no allocations.
func (l *Ledger) AllocationDateRange(projectID uuid.UUID) (first, last domain.Date, ok bool) {
	weeks := l.allocationWeeks(projectID)
	if len(weeks) == 0 {
		return domain.Date{}, domain.Date{}, false
	}
	return weeks[0], weeks[len(weeks)-1], true
}

// allocationWeeks lists the week starts carrying an assignment to the
// project, sorted ascending.
func (l *Ledger) allocationWeeks(projectID uuid.UUID) []domain.Date {
	var weeks []domain.Date
	for _, alloc := range l.state.Allocations {
		for _, asn := range alloc.Assignments {
			if asn.TechnicalProjectID == projectID {
				weeks = append(weeks, alloc.WeekStartDate)
				break
			}
		}
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	return weeks
}

// UpdateProjectDates recomputes a technical project's start and expected
// completion from the sprint boundaries of its earliest and latest
// allocated weeks. With no allocations the dates are left untouched, so
// user-set bounds survive full unassignment. Call this for every project
// added to or removed from a cell after mutation.
func (l *Ledger) UpdateProjectDates(projectID uuid.UUID, sprintAnchor domain.Date, sprintLengthWeeks int) {
	weeks := l.allocationWeeks(projectID)
	if len(weeks) == 0 {
		return
	}

	first := weeks[0]
	last := weeks[len(weeks)-1]
	firstStart, _ := calendar.SprintBoundaries(first, sprintAnchor, sprintLengthWeeks)
	_, lastEnd := calendar.SprintBoundaries(last, sprintAnchor, sprintLengthWeeks)

	project, ok := l.state.TechnicalProject(projectID)
	if !ok {
		return
	}
	project.StartDate = firstStart
	project.ExpectedCompletion = &lastEnd
	l.state.MarkModified()
}
