package database

import (
	"context"
	"database/sql"
)

// Querier is the subset of database operations shared by *sql.DB and *sql.Tx.
// Store methods take a Querier so a coordinator can thread one transaction
// through every read and write of a multi-step state change.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxQuerier is a Querier that can also run a function inside a transaction.
// *DB implements it; tests substitute a fake.
type TxQuerier interface {
	Querier
	Transact(ctx context.Context, fn func(q Querier) error) error
}

var (
	_ Querier   = (*sql.DB)(nil)
	_ Querier   = (*sql.Tx)(nil)
	_ TxQuerier = (*DB)(nil)
)
