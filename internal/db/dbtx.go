package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the document repositories run on. Both the
// raw handle and a transaction satisfy it, so the same repository code
// serves direct reads and the import transaction (see UnitOfWork).
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
