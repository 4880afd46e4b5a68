package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// PreferencesRepo persists the long-lived team preferences document.
// Persistence is by value: Save replaces the whole document, last write
// wins.
type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Save(ctx context.Context, prefs *domain.Preferences) error
}

// PlanRepo persists the quarter-scoped plan document. The plan is a single
// mutable root: Save replaces it wholesale and Clear removes it.
type PlanRepo interface {
	Get(ctx context.Context) (*domain.PlanState, error)
	Save(ctx context.Context, state *domain.PlanState) error
	Clear(ctx context.Context) error
}
