package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/quarterplan/internal/db"
	"github.com/alexanderramin/quarterplan/internal/planio"
	"github.com/alexanderramin/quarterplan/internal/repository"
)

type shareService struct {
	team TeamService
	plan PlanService
	uow  db.UnitOfWork
}

// NewShareService creates a ShareService. The unit of work scopes imports:
// preferences and plan are replaced together or not at all.
func NewShareService(team TeamService, plan PlanService, uow db.UnitOfWork) ShareService {
	return &shareService{team: team, plan: plan, uow: uow}
}

func (s *shareService) snapshot(ctx context.Context) (planio.Export, error) {
	prefs, err := s.team.Preferences(ctx)
	if err != nil {
		return planio.Export{}, err
	}
	state, err := s.plan.Current(ctx)
	if err != nil {
		return planio.Export{}, err
	}
	return planio.Merge(*prefs, *state), nil
}

func (s *shareService) ExportToFile(ctx context.Context, dir string) (string, error) {
	export, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, planio.Filename(export))
	if err := planio.WriteFile(path, export); err != nil {
		return "", err
	}
	return path, nil
}

func (s *shareService) ImportFromFile(ctx context.Context, path string) error {
	export, err := planio.ReadFile(path)
	if err != nil {
		return err
	}
	return s.importExport(ctx, export)
}

func (s *shareService) EncodeShare(ctx context.Context) (string, error) {
	export, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return planio.EncodeShare(export)
}

func (s *shareService) ImportShare(ctx context.Context, encoded string) error {
	export, err := planio.DecodeShare(encoded)
	if err != nil {
		return err
	}
	return s.importExport(ctx, export)
}

// importExport validates the snapshot and replaces both document roots in
// one transaction. An export failing validation is rejected outright; no
// repair is attempted.
func (s *shareService) importExport(ctx context.Context, export planio.Export) error {
	if err := export.Validate(); err != nil {
		return fmt.Errorf("rejecting import: %w", err)
	}

	prefs, state := export.Split()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLitePreferencesRepo(tx).Save(ctx, &prefs); err != nil {
			return err
		}
		return repository.NewSQLitePlanRepo(tx).Save(ctx, &state)
	})
}
