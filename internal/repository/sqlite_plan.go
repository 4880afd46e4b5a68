package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/quarterplan/internal/db"
	"github.com/alexanderramin/quarterplan/internal/domain"
)

// SQLitePlanRepo implements PlanRepo over a singleton row holding the
// current quarter's plan JSON document.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context) (*domain.PlanState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT document FROM plan WHERE id = 'current'`)

	var document string
	if err := row.Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	var state domain.PlanState
	if err := json.Unmarshal([]byte(document), &state); err != nil {
		return nil, fmt.Errorf("parsing plan document: %w", err)
	}
	return &state, nil
}

func (r *SQLitePlanRepo) Save(ctx context.Context, state *domain.PlanState) error {
	document, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializing plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO plan (id, quarter, document, modified_at) VALUES ('current', ?, ?, ?)`,
		state.QuarterName,
		string(document),
		state.Metadata.ModifiedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan WHERE id = 'current'`); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	return nil
}
