package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// Member options
type MemberOption func(*domain.TeamMember)

func WithRole(r domain.Role) MemberOption {
	return func(m *domain.TeamMember) {
		m.Role = r
	}
}

func WithCapacity(weeks float64) MemberOption {
	return func(m *domain.TeamMember) {
		m.Capacity = weeks
	}
}

func NewTestMember(name string, opts ...MemberOption) domain.TeamMember {
	m := domain.NewTeamMember(name, domain.RoleEngineering, 12)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Roadmap project options
type RoadmapOption func(*domain.RoadmapProject)

func WithRoadmapEstimates(eng, sci float64) RoadmapOption {
	return func(p *domain.RoadmapProject) {
		p.EngEstimate = eng
		p.SciEstimate = sci
	}
}

func WithColor(c domain.ProjectColor) RoadmapOption {
	return func(p *domain.RoadmapProject) {
		p.Color = c
	}
}

func NewTestRoadmap(name string, opts ...RoadmapOption) domain.RoadmapProject {
	p := domain.NewRoadmapProject(name, 8, 0,
		domain.NewDate(2025, time.January, 6), domain.NewDate(2025, time.March, 31), domain.ColorBlue)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Technical project options
type TechOption func(*domain.TechnicalProject)

func WithRoadmapLink(id uuid.UUID) TechOption {
	return func(p *domain.TechnicalProject) {
		p.RoadmapProjectID = &id
	}
}

func WithEstimates(eng, sci float64) TechOption {
	return func(p *domain.TechnicalProject) {
		p.EngEstimate = eng
		p.SciEstimate = sci
	}
}

func WithStartDate(d domain.Date) TechOption {
	return func(p *domain.TechnicalProject) {
		p.StartDate = d
	}
}

func NewTestTech(name string, opts ...TechOption) domain.TechnicalProject {
	p := domain.NewTechnicalProject(name, nil, 4, 0, domain.NewDate(2025, time.January, 6))
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// FullWeek builds a single-assignment 100% allocation.
func FullWeek(memberID uuid.UUID, week domain.Date, projectID uuid.UUID) domain.Allocation {
	alloc := domain.NewAllocation(memberID, week)
	asn, _ := domain.NewAssignment(projectID, 100)
	alloc.Assignments = []domain.Assignment{asn}
	return alloc
}

// SplitWeek builds a two-assignment allocation with the given percentages.
func SplitWeek(memberID uuid.UUID, week domain.Date, firstID uuid.UUID, firstPct float64, secondID uuid.UUID, secondPct float64) domain.Allocation {
	alloc := domain.NewAllocation(memberID, week)
	first, _ := domain.NewAssignment(firstID, firstPct)
	second, _ := domain.NewAssignment(secondID, secondPct)
	alloc.Assignments = []domain.Assignment{first, second}
	return alloc
}

// NewTestPlan builds a 13-week Q1 2025 plan with no projects or allocations.
func NewTestPlan() domain.PlanState {
	return domain.NewPlanState("Q1 2025", domain.NewDate(2025, time.January, 6), 13)
}

// NewTestPrefs builds preferences with the given roster.
func NewTestPrefs(members ...domain.TeamMember) domain.Preferences {
	prefs := domain.NewPreferences("Test Team")
	prefs.TeamMembers = members
	return prefs
}
