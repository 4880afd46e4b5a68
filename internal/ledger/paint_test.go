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

func TestSelection(t *testing.T) {
	assert.True(t, SelectNone().IsNone())

	id := uuid.New()
	sel := SelectTechnical(id)
	assert.False(t, sel.IsNone())
	assert.Equal(t, id, sel.ProjectID())
}

func TestPaint_AssignsFullWeek(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	ok := led.Paint(SelectTechnical(tech.ID), memberID, quarterStart, anchor, 2)
	require.True(t, ok)

	alloc, found := led.Allocation(memberID, quarterStart)
	require.True(t, found)
	require.Len(t, alloc.Assignments, 1)
	assert.Equal(t, tech.ID, alloc.Assignments[0].TechnicalProjectID)
	assert.Equal(t, 100.0, alloc.Assignments[0].Percentage)
}

func TestPaint_PropagatesProjectDates(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	require.True(t, led.Paint(SelectTechnical(tech.ID), memberID, domain.NewDate(2025, time.January, 13), anchor, 2))
	require.True(t, led.Paint(SelectTechnical(tech.ID), memberID, domain.NewDate(2025, time.January, 27), anchor, 2))

	project, _ := led.State().TechnicalProject(tech.ID)
	assert.Equal(t, domain.NewDate(2025, time.January, 6), project.StartDate)
	require.NotNil(t, project.ExpectedCompletion)
	assert.Equal(t, domain.NewDate(2025, time.February, 2), *project.ExpectedCompletion)
}

func TestPaint_EraserClearsCell(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)
	memberID := uuid.New()

	require.True(t, led.Paint(SelectTechnical(tech.ID), memberID, quarterStart, anchor, 2))
	require.True(t, led.Paint(SelectNone(), memberID, quarterStart, anchor, 2))

	_, found := led.Allocation(memberID, quarterStart)
	assert.False(t, found)
	assert.Empty(t, led.State().Allocations)
}

func TestPaint_ReplacedProjectShrinksBack(t *testing.T) {
	first := testutil.NewTestTech("First")
	second := testutil.NewTestTech("Second")
	led := newTestLedger(t, first, second)
	memberID := uuid.New()

	// First spans two sprints, then its later week is painted over.
	require.True(t, led.Paint(SelectTechnical(first.ID), memberID, domain.NewDate(2025, time.January, 6), anchor, 2))
	require.True(t, led.Paint(SelectTechnical(first.ID), memberID, domain.NewDate(2025, time.January, 20), anchor, 2))
	require.True(t, led.Paint(SelectTechnical(second.ID), memberID, domain.NewDate(2025, time.January, 20), anchor, 2))

	p1, _ := led.State().TechnicalProject(first.ID)
	require.NotNil(t, p1.ExpectedCompletion)
	assert.Equal(t, domain.NewDate(2025, time.January, 19), *p1.ExpectedCompletion)

	p2, _ := led.State().TechnicalProject(second.ID)
	assert.Equal(t, domain.NewDate(2025, time.January, 20), p2.StartDate)
}

func TestPaint_UnknownProjectRejected(t *testing.T) {
	led := newTestLedger(t)
	memberID := uuid.New()

	ok := led.Paint(SelectTechnical(uuid.New()), memberID, quarterStart, anchor, 2)
	assert.False(t, ok)
	assert.Empty(t, led.State().Allocations)
}

func TestSplit_TwoProjects(t *testing.T) {
	first := testutil.NewTestTech("First")
	second := testutil.NewTestTech("Second")
	led := newTestLedger(t, first, second)
	memberID := uuid.New()

	ok := led.Split(memberID, quarterStart,
		mustAssignment(t, first.ID, 60),
		mustAssignment(t, second.ID, 40),
		anchor, 2)
	require.True(t, ok)

	alloc, found := led.Allocation(memberID, quarterStart)
	require.True(t, found)
	require.Len(t, alloc.Assignments, 2)
	assert.True(t, alloc.IsFull())

	p1, _ := led.State().TechnicalProject(first.ID)
	assert.Equal(t, domain.NewDate(2025, time.January, 6), p1.StartDate)
	p2, _ := led.State().TechnicalProject(second.ID)
	assert.Equal(t, domain.NewDate(2025, time.January, 6), p2.StartDate)
}

func TestSplit_RejectsSameProject(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)

	ok := led.Split(uuid.New(), quarterStart,
		mustAssignment(t, tech.ID, 50),
		mustAssignment(t, tech.ID, 50),
		anchor, 2)
	assert.False(t, ok)
}

func TestSplit_RejectsUnknownProject(t *testing.T) {
	tech := testutil.NewTestTech("Auth")
	led := newTestLedger(t, tech)

	ok := led.Split(uuid.New(), quarterStart,
		mustAssignment(t, tech.ID, 50),
		mustAssignment(t, uuid.New(), 50),
		anchor, 2)
	assert.False(t, ok)
	assert.Empty(t, led.State().Allocations)
}
