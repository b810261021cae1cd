package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peachieglow/glow/internal/repository"
)

func newMockStorage(t *testing.T) (pgxmock.PgxPoolIface, *repository.PostgresStorage) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock, repository.NewPostgresStorageWithConn(mock)
}

func TestWithinTxCommits(t *testing.T) {
	mock, storage := newMockStorage(t)
	user := testUser()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), user.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO achievement_unlocks`)).
		WithArgs("first-glow", user.ID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := storage.WithinTx(context.Background(), func(tx repository.Storage) error {
		if err := tx.Users().Update(context.Background(), &user); err != nil {
			return err
		}
		return tx.Unlocks().Add(context.Background(), "first-glow", user.ID)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTxRollsBack(t *testing.T) {
	mock, storage := newMockStorage(t)
	failure := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := storage.WithinTx(context.Background(), func(tx repository.Storage) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTxBeginError(t *testing.T) {
	mock, storage := newMockStorage(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := storage.WithinTx(context.Background(), func(tx repository.Storage) error {
		called = true
		return nil
	})
	assert.EqualError(t, err, "beginning transaction error: no connection")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
