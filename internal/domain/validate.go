package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IssueKind discriminates plan validation findings.
type IssueKind string

const (
	// IssueInvalidPercentage: a week's assignments sum to neither 0 nor 100.
	IssueInvalidPercentage IssueKind = "invalid_percentage"
	// IssueOverAllocated: a member's allocated weeks exceed their capacity.
	IssueOverAllocated IssueKind = "over_allocated"
	// IssueBeforeStartDate: an allocation predates its project's start.
	IssueBeforeStartDate IssueKind = "before_start_date"
)

// PlanIssue is one advisory finding from ValidatePlan. Issues do not block
// mutation; they are surfaced so the user can repair the plan.
type PlanIssue struct {
	Kind        IssueKind
	MemberID    uuid.UUID
	MemberName  string
	ProjectName string
	WeekStart   Date
	Total       float64
	Capacity    float64
	Allocated   float64
}

func (i PlanIssue) String() string {
	switch i.Kind {
	case IssueInvalidPercentage:
		return fmt.Sprintf("week %s for member %s sums to %.0f%% (want 0%% or 100%%)",
			i.WeekStart, i.MemberID, i.Total)
	case IssueOverAllocated:
		return fmt.Sprintf("%s allocated %.1f weeks over capacity %.1f",
			i.MemberName, i.Allocated, i.Capacity)
	case IssueBeforeStartDate:
		return fmt.Sprintf("%s allocated to %s in week %s before project start",
			i.MemberName, i.ProjectName, i.WeekStart)
	default:
		return string(i.Kind)
	}
}

// ValidatePlan checks the advisory plan invariants: percentage sums,
// member capacity, and allocations scheduled before their project starts.
// Unresolvable member or project references are skipped, not reported;
// referential integrity belongs to export validation.
func ValidatePlan(prefs *Preferences, state *PlanState) []PlanIssue {
	var issues []PlanIssue

	for _, alloc := range state.Allocations {
		if !alloc.IsValid() {
			issues = append(issues, PlanIssue{
				Kind:      IssueInvalidPercentage,
				MemberID:  alloc.TeamMemberID,
				WeekStart: alloc.WeekStartDate,
				Total:     alloc.TotalPercentage(),
			})
		}
	}

	allocated := make(map[uuid.UUID]float64)
	for _, alloc := range state.Allocations {
		allocated[alloc.TeamMemberID] += alloc.TotalPercentage() / 100
	}
	for _, m := range prefs.TeamMembers {
		if allocated[m.ID] > m.Capacity {
			issues = append(issues, PlanIssue{
				Kind:       IssueOverAllocated,
				MemberID:   m.ID,
				MemberName: m.Name,
				Capacity:   m.Capacity,
				Allocated:  allocated[m.ID],
			})
		}
	}

	for _, alloc := range state.Allocations {
		member, ok := prefs.Member(alloc.TeamMemberID)
		if !ok {
			continue
		}
		for _, asn := range alloc.Assignments {
			project, ok := state.TechnicalProject(asn.TechnicalProjectID)
			if !ok {
				continue
			}
			if alloc.WeekStartDate.Before(project.StartDate) {
				issues = append(issues, PlanIssue{
					Kind:        IssueBeforeStartDate,
					MemberID:    member.ID,
					MemberName:  member.Name,
					ProjectName: project.Name,
					WeekStart:   alloc.WeekStartDate,
				})
			}
		}
	}

	return issues
}
