package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/planio"
	"github.com/alexanderramin/quarterplan/internal/repository"
	"github.com/alexanderramin/quarterplan/internal/testutil"
)

type shareFixture struct {
	share ShareService
	team  TeamService
	plan  PlanService
}

func newShareFixture(t *testing.T) shareFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	team := NewTeamService(prefsRepo)
	plan := NewPlanService(planRepo, prefsRepo)
	return shareFixture{
		share: NewShareService(team, plan, testutil.NewTestUoW(database)),
		team:  team,
		plan:  plan,
	}
}

func TestShareService_ExportImportFile(t *testing.T) {
	src := newShareFixture(t)
	ctx := context.Background()
	require.NoError(t, src.plan.LoadSample(ctx))

	dir := t.TempDir()
	path, err := src.share.ExportToFile(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan-engineering-team-q1-2025.json"), path)

	dst := newShareFixture(t)
	require.NoError(t, dst.share.ImportFromFile(ctx, path))

	state, err := dst.plan.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q1 2025", state.QuarterName)
	assert.Len(t, state.TechnicalProjects, 5)

	prefs, err := dst.team.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Engineering Team", prefs.TeamName)
	assert.Len(t, prefs.TeamMembers, 4)
}

func TestShareService_ImportResetsSprintConfig(t *testing.T) {
	src := newShareFixture(t)
	ctx := context.Background()
	require.NoError(t, src.plan.LoadSample(ctx))

	prefs, err := src.team.Preferences(ctx)
	require.NoError(t, err)
	prefs.SprintLengthWeeks = 4
	prefs.SprintAnchorDate = domain.NewDate(2025, time.March, 3)
	require.NoError(t, src.team.SavePreferences(ctx, prefs))

	encoded, err := src.share.EncodeShare(ctx)
	require.NoError(t, err)

	dst := newShareFixture(t)
	require.NoError(t, dst.share.ImportShare(ctx, encoded))

	got, err := dst.team.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSprintLengthWeeks, got.SprintLengthWeeks)
	assert.Equal(t, domain.DefaultSprintAnchor(), got.SprintAnchorDate)
}

func TestShareService_ShareStringRoundTrip(t *testing.T) {
	src := newShareFixture(t)
	ctx := context.Background()
	require.NoError(t, src.plan.LoadSample(ctx))

	encoded, err := src.share.EncodeShare(ctx)
	require.NoError(t, err)

	dst := newShareFixture(t)
	require.NoError(t, dst.share.ImportShare(ctx, encoded))

	srcState, err := src.plan.Current(ctx)
	require.NoError(t, err)
	dstState, err := dst.plan.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, srcState.Allocations, dstState.Allocations)
}

func TestShareService_ImportRejectsInvalidExport(t *testing.T) {
	fix := newShareFixture(t)
	ctx := context.Background()

	// An export with no team members fails validation before any write.
	prefs := domain.DefaultPreferences()
	state := testutil.NewTestPlan()
	bad := planio.Merge(prefs, state)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, planio.WriteFile(path, bad))

	err := fix.share.ImportFromFile(ctx, path)
	require.Error(t, err)
	var vErr *planio.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, planio.CodeNoTeamMembers, vErr.Code)

	// Nothing was stored.
	got, err := fix.team.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTeamName, got.TeamName)
}

func TestShareService_ImportRejectsMalformedFile(t *testing.T) {
	fix := newShareFixture(t)

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Error(t, fix.share.ImportFromFile(context.Background(), path))
}

func TestShareService_ImportRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	team := NewTeamService(prefsRepo)
	plan := NewPlanService(planRepo, prefsRepo)

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	share := NewShareService(team, plan, uow)

	src := newShareFixture(t)
	ctx := context.Background()
	require.NoError(t, src.plan.LoadSample(ctx))
	encoded, err := src.share.EncodeShare(ctx)
	require.NoError(t, err)

	// The second write (the plan document) fails; the preferences write
	// from the same transaction must not survive.
	err = share.ImportShare(ctx, encoded)
	assert.ErrorIs(t, err, boom)

	_, err = prefsRepo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = planRepo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
