package planio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/testutil"
)

func validExport(t *testing.T) Export {
	prefs, state := newPopulatedDocs(t)
	return Merge(prefs, state)
}

func requireCode(t *testing.T, err error, code ValidationCode) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, code, vErr.Code)
	return vErr
}

func TestValidate_AcceptsWellFormedExport(t *testing.T) {
	assert.NoError(t, validExport(t).Validate())
}

func TestValidate_ShapeChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Export)
		want   ValidationCode
	}{
		{"missing version", func(e *Export) { e.Version = "" }, CodeInvalidVersion},
		{"blank team name", func(e *Export) { e.TeamName = "  " }, CodeEmptyTeamName},
		{"no members", func(e *Export) { e.TeamMembers = nil }, CodeNoTeamMembers},
		{"blank quarter name", func(e *Export) { e.QuarterName = "" }, CodeEmptyQuarterName},
		{"zero weeks", func(e *Export) { e.NumWeeks = 0 }, CodeInvalidNumWeeks},
		{"negative weeks", func(e *Export) { e.NumWeeks = -1 }, CodeInvalidNumWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export := validExport(t)
			tt.mutate(&export)
			requireCode(t, export.Validate(), tt.want)
		})
	}
}

func TestValidate_DanglingMemberReference(t *testing.T) {
	export := validExport(t)
	ghost := uuid.New()
	export.Allocations[0].TeamMemberID = ghost

	vErr := requireCode(t, export.Validate(), CodeUnknownTeamMember)
	assert.Equal(t, ghost, vErr.ID)
}

func TestValidate_DanglingProjectReference(t *testing.T) {
	export := validExport(t)
	ghost := uuid.New()
	export.Allocations[0].Assignments[0].TechnicalProjectID = ghost

	vErr := requireCode(t, export.Validate(), CodeUnknownProject)
	assert.Equal(t, ghost, vErr.ID)
}

func TestValidate_DanglingRoadmapLink(t *testing.T) {
	export := validExport(t)
	ghost := uuid.New()
	export.TechnicalProjects[0].RoadmapProjectID = &ghost

	vErr := requireCode(t, export.Validate(), CodeUnknownRoadmapLink)
	assert.Equal(t, ghost, vErr.ID)
}

func TestValidate_UnlinkedTechnicalProjectAllowed(t *testing.T) {
	export := validExport(t)
	export.TechnicalProjects[0].RoadmapProjectID = nil

	assert.NoError(t, export.Validate())
}

func TestValidate_FirstErrorWins(t *testing.T) {
	export := validExport(t)
	export.TeamName = ""
	export.Allocations[0].TeamMemberID = uuid.New()

	requireCode(t, export.Validate(), CodeEmptyTeamName)
}

func TestValidate_EmptyPlanningDataAllowed(t *testing.T) {
	member := testutil.NewTestMember("Alice")
	prefs := testutil.NewTestPrefs(member)
	state := testutil.NewTestPlan()

	export := Merge(prefs, state)
	require.Equal(t, domain.SchemaVersion, export.Version)
	assert.NoError(t, export.Validate())
}
