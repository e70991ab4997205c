// Package store defines the persistence interfaces consumed by the service
// and API layers, together with the sentinel errors implementations return.
package store

import (
	"context"
	"database/sql"
)

// DBTX is the common subset of *sql.DB and *sql.Tx used by store
// implementations, so the same store code runs inside and outside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
