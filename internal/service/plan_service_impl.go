package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/calendar"
	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/ledger"
	"github.com/alexanderramin/quarterplan/internal/repository"
)

// defaultNumWeeks is the standard quarter length.
const defaultNumWeeks = 13

type planService struct {
	plans repository.PlanRepo
	prefs repository.PreferencesRepo
	now   func() time.Time
}

// NewPlanService creates a PlanService over the given repositories.
func NewPlanService(plans repository.PlanRepo, prefs repository.PreferencesRepo) PlanService {
	return &planService{plans: plans, prefs: prefs, now: time.Now}
}

func (s *planService) Current(ctx context.Context) (*domain.PlanState, error) {
	state, err := s.plans.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		today := domain.DateOf(s.now())
		_, _, start, name := calendar.NextQuarterInfo(today)
		seeded := domain.NewPlanState(name, start, defaultNumWeeks)
		return &seeded, nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *planService) Save(ctx context.Context, state *domain.PlanState) error {
	return s.plans.Save(ctx, state)
}

func (s *planService) Clear(ctx context.Context) error {
	return s.plans.Clear(ctx)
}

func (s *planService) LoadSample(ctx context.Context) error {
	prefs, state := SamplePlan()
	if err := s.prefs.Save(ctx, &prefs); err != nil {
		return err
	}
	return s.plans.Save(ctx, &state)
}

func (s *planService) Paint(ctx context.Context, sel ledger.Selection, memberID uuid.UUID, weekStart domain.Date) error {
	prefs, state, err := s.loadBoth(ctx)
	if err != nil {
		return err
	}

	led := ledger.New(state)
	if !led.Paint(sel, memberID, weekStart, prefs.SprintAnchorDate, prefs.SprintLengthWeeks) {
		return fmt.Errorf("technical project %s: %w", sel.ProjectID(), repository.ErrNotFound)
	}
	return s.plans.Save(ctx, state)
}

func (s *planService) SplitCell(ctx context.Context, memberID uuid.UUID, weekStart domain.Date, first, second domain.Assignment) error {
	prefs, state, err := s.loadBoth(ctx)
	if err != nil {
		return err
	}

	led := ledger.New(state)
	if !led.Split(memberID, weekStart, first, second, prefs.SprintAnchorDate, prefs.SprintLengthWeeks) {
		return fmt.Errorf("split requires two distinct existing projects")
	}
	return s.plans.Save(ctx, state)
}

func (s *planService) Grid(ctx context.Context) (*GridReport, error) {
	prefs, state, err := s.loadBoth(ctx)
	if err != nil {
		return nil, err
	}

	led := ledger.New(state)
	weeks := calendar.GenerateQuarterWeeks(state.QuarterStartDate, state.NumWeeks, prefs.SprintLengthWeeks)

	rows := make([]GridRow, 0, len(prefs.TeamMembers))
	for _, member := range prefs.TeamMembers {
		row := GridRow{
			Member:    member,
			Allocated: led.MemberAllocatedWeeks(member.ID),
			Cells:     make([]GridCell, 0, len(weeks)),
		}
		for _, week := range weeks {
			row.Cells = append(row.Cells, buildCell(led, member.ID, week.StartDate))
		}
		rows = append(rows, row)
	}

	return &GridReport{
		TeamName:    prefs.TeamName,
		QuarterName: state.QuarterName,
		Weeks:       weeks,
		Rows:        rows,
	}, nil
}

// buildCell computes the rendering variant for one member-week. Dangling
// project references render as empty.
func buildCell(led *ledger.Ledger, memberID uuid.UUID, weekStart domain.Date) GridCell {
	alloc, ok := led.Allocation(memberID, weekStart)
	if !ok || alloc.IsEmpty() {
		return GridCell{Kind: CellEmpty}
	}

	state := led.State()
	var projects []GridCellProject
	for _, asn := range alloc.Assignments {
		p, ok := state.TechnicalProject(asn.TechnicalProjectID)
		if !ok {
			continue
		}
		projects = append(projects, GridCellProject{
			Name:       p.Name,
			Color:      state.ProjectColor(p),
			Percentage: asn.Percentage,
		})
	}

	switch len(projects) {
	case 0:
		return GridCell{Kind: CellEmpty}
	case 1:
		return GridCell{Kind: CellSingle, Projects: projects}
	default:
		return GridCell{Kind: CellSplit, Projects: projects}
	}
}

func (s *planService) Status(ctx context.Context) (*StatusReport, error) {
	prefs, state, err := s.loadBoth(ctx)
	if err != nil {
		return nil, err
	}

	led := ledger.New(state)
	roleOf := prefs.MemberRole

	engCap, sciCap, totalCap := prefs.TotalCapacityByRole()
	engAlloc, sciAlloc, totalAlloc := led.TotalAllocatedByRole(roleOf)

	report := &StatusReport{
		TeamName:     prefs.TeamName,
		QuarterName:  state.QuarterName,
		QuarterStart: state.QuarterStartDate,
		NumWeeks:     state.NumWeeks,

		EngCapacity:   engCap,
		SciCapacity:   sciCap,
		TotalCapacity: totalCap,

		EngAllocated:   engAlloc,
		SciAllocated:   sciAlloc,
		TotalAllocated: totalAlloc,
		OverallBadge:   domain.CapacityStatus(totalAlloc, totalCap),

		Issues: domain.ValidatePlan(prefs, state),
	}

	for _, member := range prefs.TeamMembers {
		allocated := led.MemberAllocatedWeeks(member.ID)
		report.Members = append(report.Members, MemberStatus{
			Member:    member,
			Allocated: allocated,
			Badge:     domain.CapacityStatus(allocated, member.Capacity),
			Projects:  led.AssignedProjectNames(member.ID),
		})
	}

	for i := range state.TechnicalProjects {
		p := state.TechnicalProjects[i]
		eng, sci, total := led.ProjectAllocatedByRole(p.ID, roleOf)
		report.Projects = append(report.Projects, ProjectStatus{
			Project:        p,
			Color:          state.ProjectColor(&p),
			EngAllocated:   eng,
			SciAllocated:   sci,
			TotalAllocated: total,
			Badge:          domain.CapacityStatus(total, p.TotalEstimate()),
			AssignedCount:  len(led.AssignedMembers(p.ID)),
		})
	}

	for _, rp := range state.RoadmapProjects {
		eng, sci, total := led.RoadmapAllocatedByRole(rp.ID, roleOf)
		report.Roadmaps = append(report.Roadmaps, RoadmapStatus{
			Project:        rp,
			EngAllocated:   eng,
			SciAllocated:   sci,
			TotalAllocated: total,
			Badge:          domain.CapacityStatus(total, rp.TotalEstimate()),
		})
	}

	return report, nil
}

func (s *planService) loadBoth(ctx context.Context) (*domain.Preferences, *domain.PlanState, error) {
	prefs, err := s.prefs.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		defaults := domain.DefaultPreferences()
		prefs = &defaults
	} else if err != nil {
		return nil, nil, err
	}

	state, err := s.Current(ctx)
	if err != nil {
		return nil, nil, err
	}
	return prefs, state, nil
}
