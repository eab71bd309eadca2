package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// ErrInsufficientStock is returned when a conditional stock decrement finds
// fewer units than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

type rowScanner interface {
	Scan(dest ...any) error
}

// TxManager runs a unit of work inside a single database transaction.
type TxManager interface {
	WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error
}

type txManager struct {
	DB *sql.DB
}

func NewTxManager(db *sql.DB) TxManager {
	return &txManager{DB: db}
}

// WithinTx begins a transaction, runs fn and commits when fn returns nil.
// The transaction is rolled back when fn returns an error or panics; the
// error from fn is returned unchanged.
func (m *txManager) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {

	tx, err := m.DB.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to roll back transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ErrNoFieldsToUpdate is returned by partial updates that carry no field.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// deleteByID runs a single-row delete and reports sql.ErrNoRows when nothing
// matched.
func deleteByID(ctx context.Context, db DBTX, query string, id int64) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	result, err := db.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("deleting row: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting row: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
