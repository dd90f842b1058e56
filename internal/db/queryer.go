package db

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database operations shared by *sql.DB,
// *sql.Tx and *DB. Repositories are constructed over a Queryer so the
// same implementation runs against the pool or inside a transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
	_ Queryer = (*DB)(nil)
)
