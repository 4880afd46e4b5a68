package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/testutil"
)

var (
	anchor       = domain.NewDate(2025, time.January, 6)
	quarterStart = domain.NewDate(2025, time.January, 6)
)

func newTestLedger(t *testing.T, techs ...domain.TechnicalProject) *Ledger {
	t.Helper()
	state := testutil.NewTestPlan()
	state.TechnicalProjects = techs
	return New(&state)
}

func mustAssignment(t *testing.T, projectID uuid.UUID, pct float64) domain.Assignment {
	t.Helper()
	asn, err := domain.NewAssignment(projectID, pct)
	require.NoError(t, err)
	return asn
}

func TestReplaceCell_InsertAndLookup(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	touched := led.ReplaceCell(memberID, quarterStart, []domain.Assignment{
		mustAssignment(t, tech.ID, 100),
	})

	assert.Equal(t, []uuid.UUID{tech.ID}, touched)

	alloc, ok := led.Allocation(memberID, quarterStart)
	require.True(t, ok)
	assert.Equal(t, 100.0, alloc.TotalPercentage())

	_, ok = led.Allocation(memberID, quarterStart.AddWeeks(1))
	assert.False(t, ok)
	_, ok = led.Allocation(uuid.New(), quarterStart)
	assert.False(t, ok)
}

func TestReplaceCell_ReplaceReportsBothProjects(t *testing.T) {
	old := testutil.NewTestTech("Old")
	next := testutil.NewTestTech("New")
	led := newTestLedger(t, old, next)
	memberID := uuid.New()

	led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, old.ID, 100)})
	touched := led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, next.ID, 100)})

	assert.Len(t, touched, 2)
	assert.Contains(t, touched, old.ID)
	assert.Contains(t, touched, next.ID)

	alloc, ok := led.Allocation(memberID, quarterStart)
	require.True(t, ok)
	require.Len(t, alloc.Assignments, 1)
	assert.Equal(t, next.ID, alloc.Assignments[0].TechnicalProjectID)
}

func TestReplaceCell_EmptyDeletesRow(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	touched := led.ReplaceCell(memberID, quarterStart, nil)

	assert.Equal(t, []uuid.UUID{tech.ID}, touched)
	_, ok := led.Allocation(memberID, quarterStart)
	assert.False(t, ok)
	assert.Empty(t, led.State().Allocations, "empty allocations are never persisted")
}

func TestReplaceCell_ClearingEmptyCellIsNoop(t *testing.T) {
	led := newTestLedger(t)

	touched := led.ReplaceCell(uuid.New(), quarterStart, nil)
	assert.Empty(t, touched)
	assert.Empty(t, led.State().Allocations)
}

func TestProjectAllocatedWeeks(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	other := testutil.NewTestTech("Other")
	led := newTestLedger(t, tech, other)

	m1, m2, m3 := uuid.New(), uuid.New(), uuid.New()
	led.ReplaceCell(m1, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(m2, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(m3, quarterStart, []domain.Assignment{
		mustAssignment(t, tech.ID, 50),
		mustAssignment(t, other.ID, 50),
	})

	assert.Equal(t, 2.5, led.ProjectAllocatedWeeks(tech.ID))
	assert.Equal(t, 0.5, led.ProjectAllocatedWeeks(other.ID))
	assert.Equal(t, 0.0, led.ProjectAllocatedWeeks(uuid.New()))
}

func TestMemberAllocatedWeeks(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	other := testutil.NewTestTech("Other")
	led := newTestLedger(t, tech, other)
	memberID := uuid.New()

	led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(memberID, quarterStart.AddWeeks(1), []domain.Assignment{
		mustAssignment(t, tech.ID, 60),
		mustAssignment(t, other.ID, 40),
	})

	assert.Equal(t, 2.0, led.MemberAllocatedWeeks(memberID))
	assert.Equal(t, 0.0, led.MemberAllocatedWeeks(uuid.New()))
}

func TestAllocatedByRole(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)

	eng := uuid.New()
	sci := uuid.New()
	gone := uuid.New()

	roleOf := func(id uuid.UUID) (domain.Role, bool) {
		switch id {
		case eng:
			return domain.RoleEngineering, true
		case sci:
			return domain.RoleScience, true
		default:
			return "", false
		}
	}

	led.ReplaceCell(eng, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(sci, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 50)})
	led.ReplaceCell(gone, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})

	e, s, total := led.ProjectAllocatedByRole(tech.ID, roleOf)
	assert.Equal(t, 1.0, e)
	assert.Equal(t, 0.5, s)
	assert.Equal(t, 1.5, total, "deleted members contribute nothing")

	e, s, total = led.TotalAllocatedByRole(roleOf)
	assert.Equal(t, 1.0, e)
	assert.Equal(t, 0.5, s)
	assert.Equal(t, 1.5, total)
}

func TestRoadmapAllocatedByRole(t *testing.T) {
	roadmap := testutil.NewTestRoadmap("Platform")
	linked1 := testutil.NewTestTech("Auth", testutil.WithRoadmapLink(roadmap.ID))
	linked2 := testutil.NewTestTech("API", testutil.WithRoadmapLink(roadmap.ID))
	unlinked := testutil.NewTestTech("Standalone")

	state := testutil.NewTestPlan()
	state.RoadmapProjects = []domain.RoadmapProject{roadmap}
	state.TechnicalProjects = []domain.TechnicalProject{linked1, linked2, unlinked}
	led := New(&state)

	eng := uuid.New()
	roleOf := func(id uuid.UUID) (domain.Role, bool) { return domain.RoleEngineering, true }

	led.ReplaceCell(eng, quarterStart, []domain.Assignment{mustAssignment(t, linked1.ID, 100)})
	led.ReplaceCell(eng, quarterStart.AddWeeks(1), []domain.Assignment{mustAssignment(t, linked2.ID, 100)})
	led.ReplaceCell(eng, quarterStart.AddWeeks(2), []domain.Assignment{mustAssignment(t, unlinked.ID, 100)})

	e, _, total := led.RoadmapAllocatedByRole(roadmap.ID, roleOf)
	assert.Equal(t, 2.0, e)
	assert.Equal(t, 2.0, total, "unlinked projects do not roll up")
}

func TestAssignedMembers_Deduplicated(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(memberID, quarterStart.AddWeeks(1), []domain.Assignment{mustAssignment(t, tech.ID, 100)})

	members := led.AssignedMembers(tech.ID)
	require.Len(t, members, 1)
	assert.Equal(t, memberID, members[0])

	assert.Empty(t, led.AssignedMembers(uuid.New()))
}

func TestAssignedProjectNames_SkipsDangling(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	led.ReplaceCell(memberID, quarterStart, []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(memberID, quarterStart.AddWeeks(1), []domain.Assignment{mustAssignment(t, uuid.New(), 100)})

	assert.Equal(t, []string{"Auth"}, led.AssignedProjectNames(memberID))
}

func TestAllocationDateRange(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	_, _, ok := led.AllocationDateRange(tech.ID)
	assert.False(t, ok)

	led.ReplaceCell(memberID, quarterStart.AddWeeks(3), []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(memberID, quarterStart.AddWeeks(1), []domain.Assignment{mustAssignment(t, tech.ID, 100)})

	first, last, ok := led.AllocationDateRange(tech.ID)
	require.True(t, ok)
	assert.Equal(t, quarterStart.AddWeeks(1), first)
	assert.Equal(t, quarterStart.AddWeeks(3), last)
}

func TestUpdateProjectDates_SnapsToSprintBoundaries(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	// Allocations on Jan 13 and Jan 27 with 2-week sprints anchored Jan 6:
	// the containing sprints are Jan 6-19 and Jan 20-Feb 2.
	led.ReplaceCell(memberID, domain.NewDate(2025, time.January, 13), []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.ReplaceCell(memberID, domain.NewDate(2025, time.January, 27), []domain.Assignment{mustAssignment(t, tech.ID, 100)})
	led.UpdateProjectDates(tech.ID, anchor, 2)

	project, ok := led.State().TechnicalProject(tech.ID)
	require.True(t, ok)
	assert.Equal(t, domain.NewDate(2025, time.January, 6), project.StartDate)
	require.NotNil(t, project.ExpectedCompletion)
	assert.Equal(t, domain.NewDate(2025, time.February, 2), *project.ExpectedCompletion)
}

func TestUpdateProjectDates_NoAllocationsLeavesDatesAlone(t *testing.T) {
	start := domain.NewDate(2025, time.March, 3)
	tech := testutil.NewTestTech("Auth", testutil.WithStartDate(start))
	led := newTestLedger(t, tech)

	led.UpdateProjectDates(tech.ID, anchor, 2)

	project, ok := led.State().TechnicalProject(tech.ID)
	require.True(t, ok)
	assert.Equal(t, start, project.StartDate)
	assert.Nil(t, project.ExpectedCompletion)
}
