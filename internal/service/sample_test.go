package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/ledger"
	"github.com/alexanderramin/quarterplan/internal/planio"
)

func TestSamplePlan_Integrity(t *testing.T) {
	prefs, state := SamplePlan()

	require.NoError(t, prefs.Validate())
	assert.Len(t, prefs.TeamMembers, 4)
	assert.Len(t, state.RoadmapProjects, 3)
	assert.Len(t, state.TechnicalProjects, 5)

	assert.Empty(t, domain.ValidatePlan(&prefs, &state), "sample must validate cleanly")
	assert.NoError(t, planio.Merge(prefs, state).Validate(), "sample must survive export validation")
}

func TestSamplePlan_AllocationsWellFormed(t *testing.T) {
	_, state := SamplePlan()

	seen := make(map[string]bool)
	for _, alloc := range state.Allocations {
		assert.True(t, alloc.IsFull(), "member %s week %s", alloc.TeamMemberID, alloc.WeekStartDate)

		key := alloc.TeamMemberID.String() + alloc.WeekStartDate.String()
		assert.False(t, seen[key], "duplicate cell for member %s week %s", alloc.TeamMemberID, alloc.WeekStartDate)
		seen[key] = true
	}
}

func TestSamplePlan_ContainsSplitWeek(t *testing.T) {
	_, state := SamplePlan()

	var splits int
	for _, alloc := range state.Allocations {
		if len(alloc.Assignments) == 2 {
			splits++
			assert.Equal(t, 100.0, alloc.TotalPercentage())
			assert.NotEqual(t, alloc.Assignments[0].TechnicalProjectID, alloc.Assignments[1].TechnicalProjectID)
		}
	}
	assert.Equal(t, 1, splits)
}

func TestSamplePlan_FreshIDsPerCall(t *testing.T) {
	_, first := SamplePlan()
	_, second := SamplePlan()

	assert.NotEqual(t, first.TechnicalProjects[0].ID, second.TechnicalProjects[0].ID)
}

func TestSamplePlan_AggregatesMatchRoster(t *testing.T) {
	prefs, state := SamplePlan()
	led := ledger.New(&state)

	// Alice: 3 full weeks plus one split week.
	alice := prefs.TeamMembers[0]
	assert.Equal(t, 4.0, led.MemberAllocatedWeeks(alice.ID))

	// Carol skips week 3.
	carol := prefs.TeamMembers[2]
	assert.Equal(t, 3.0, led.MemberAllocatedWeeks(carol.ID))

	_, sciCap, _ := prefs.TotalCapacityByRole()
	assert.Equal(t, 6.0, sciCap)
}
