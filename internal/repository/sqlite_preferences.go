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

// SQLitePreferencesRepo implements PreferencesRepo over a singleton row
// holding the preferences JSON document.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.Preferences, error) {
	row := r.db.QueryRowContext(ctx, `SELECT document FROM preferences WHERE id = 'default'`)

	var document string
	if err := row.Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(document), &prefs); err != nil {
		return nil, fmt.Errorf("parsing preferences document: %w", err)
	}
	return &prefs, nil
}

func (r *SQLitePreferencesRepo) Save(ctx context.Context, prefs *domain.Preferences) error {
	document, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("serializing preferences: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO preferences (id, document, updated_at) VALUES ('default', ?, ?)`,
		string(document),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
