package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTxCommits(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := withTx(context.Background(), mock, func(tx pgx.Tx) error { return nil })
	require.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := withTx(context.Background(), mock, func(tx pgx.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = withTx(context.Background(), mock, func(tx pgx.Tx) error { panic("boom") })
	})
}

func TestWithTxBeginFailure(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := withTx(context.Background(), mock, func(tx pgx.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.False(t, called)
}
