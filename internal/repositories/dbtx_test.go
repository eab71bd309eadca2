package repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
)

func TestTxManager_WithinTx(t *testing.T) {
	t.Run("Success - Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := repository.NewTxManager(db).WithinTx(t.Context(), nil, func(tx *sql.Tx) error {
			return nil
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Rollback returns original error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		cause := errors.New("line item insert failed")

		err := repository.NewTxManager(db).WithinTx(t.Context(), nil, func(tx *sql.Tx) error {
			return cause
		})

		assert.ErrorIs(t, err, cause)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Panic rolls back and re-panics", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = repository.NewTxManager(db).WithinTx(t.Context(), nil, func(tx *sql.Tx) error {
				panic("boom")
			})
		})

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin error", func(t *testing.T) {
		db, mock := newMockDB(t)
		beginErr := errors.New("too many connections")
		mock.ExpectBegin().WillReturnError(beginErr)

		called := false
		err := repository.NewTxManager(db).WithinTx(t.Context(), nil, func(tx *sql.Tx) error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, beginErr)
		assert.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Commit error", func(t *testing.T) {
		db, mock := newMockDB(t)
		commitErr := errors.New("serialization failure")
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(commitErr)

		err := repository.NewTxManager(db).WithinTx(t.Context(), nil, func(tx *sql.Tx) error {
			return nil
		})

		assert.ErrorIs(t, err, commitErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
