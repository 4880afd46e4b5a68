package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// SamplePlan builds a fully-formed demo (Preferences, PlanState) pair for
// Q1 2025: four team members, three roadmap projects, five technical
// projects, and a few weeks of allocations including a split week. It is
// a pure factory with no hidden state.
func SamplePlan() (domain.Preferences, domain.PlanState) {
	quarterStart := domain.NewDate(2025, time.January, 1)

	prefs := domain.NewPreferences("Engineering Team")
	state := domain.NewPlanState("Q1 2025", quarterStart, 13)

	alice := domain.NewTeamMember("Alice Kim", domain.RoleEngineering, 12)
	bob := domain.NewTeamMember("Bob Martinez", domain.RoleEngineering, 12)
	carol := domain.NewTeamMember("Carol Smith", domain.RoleScience, 6)
	dave := domain.NewTeamMember("Dave Roberts", domain.RoleEngineering, 12)
	prefs.TeamMembers = []domain.TeamMember{alice, bob, carol, dave}

	platform := domain.NewRoadmapProject("Q1 Platform Improvements", 24, 8,
		domain.NewDate(2025, time.January, 6), domain.NewDate(2025, time.March, 31), domain.ColorBlue)
	payment := domain.NewRoadmapProject("Payment Gateway", 8, 0,
		domain.NewDate(2025, time.January, 6), domain.NewDate(2025, time.February, 28), domain.ColorGreen)
	data := domain.NewRoadmapProject("Data Pipeline Overhaul", 16, 6,
		domain.NewDate(2025, time.January, 20), domain.NewDate(2025, time.March, 31), domain.ColorYellow)
	state.RoadmapProjects = []domain.RoadmapProject{platform, payment, data}

	authService := domain.NewTechnicalProject("Auth Service Refactor", &platform.ID, 6, 0, quarterStart)
	paymentAPI := domain.NewTechnicalProject("Payment API Integration", &payment.ID, 8, 0, quarterStart)
	mlPipeline := domain.NewTechnicalProject("ML Pipeline Optimization", &platform.ID, 6, 6, quarterStart)
	dataPipeline := domain.NewTechnicalProject("Data Pipeline Migration", &data.ID, 6, 4,
		domain.NewDate(2025, time.January, 20))
	research := domain.NewTechnicalProject("Algorithm Research", &data.ID, 0, 6, quarterStart)
	state.TechnicalProjects = []domain.TechnicalProject{
		authService, paymentAPI, mlPipeline, dataPipeline, research,
	}

	// Alice: Payment API weeks 1-3, then a 60/40 split week.
	for week := 0; week < 3; week++ {
		state.Allocations = append(state.Allocations,
			fullAllocation(alice.ID, quarterStart.AddWeeks(week), paymentAPI.ID))
	}
	split := domain.NewAllocation(alice.ID, quarterStart.AddWeeks(3))
	splitFirst, _ := domain.NewAssignment(paymentAPI.ID, 60)
	splitSecond, _ := domain.NewAssignment(dataPipeline.ID, 40)
	split.Assignments = []domain.Assignment{splitFirst, splitSecond}
	state.Allocations = append(state.Allocations, split)

	// Bob: ML Pipeline weeks 1-4.
	for week := 0; week < 4; week++ {
		state.Allocations = append(state.Allocations,
			fullAllocation(bob.ID, quarterStart.AddWeeks(week), mlPipeline.ID))
	}

	// Carol: Research weeks 1, 2, and 4; week 3 unallocated.
	for _, week := range []int{0, 1, 3} {
		state.Allocations = append(state.Allocations,
			fullAllocation(carol.ID, quarterStart.AddWeeks(week), research.ID))
	}

	// Dave: Auth Service weeks 1-3.
	for week := 0; week < 3; week++ {
		state.Allocations = append(state.Allocations,
			fullAllocation(dave.ID, quarterStart.AddWeeks(week), authService.ID))
	}

	return prefs, state
}

// fullAllocation builds a single-project 100% week.
func fullAllocation(memberID uuid.UUID, week domain.Date, projectID uuid.UUID) domain.Allocation {
	alloc := domain.NewAllocation(memberID, week)
	asn, _ := domain.NewAssignment(projectID, 100)
	alloc.Assignments = []domain.Assignment{asn}
	return alloc
}
