package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPgError_Nil(t *testing.T) {
	require.NoError(t, mapPgError(nil))
}

func TestMapPgError_ConnectionClassIsUnavailable(t *testing.T) {
	err := mapPgError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure, Message: "gone"})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestMapPgError_DeadlockIsRetryable(t *testing.T) {
	err := mapPgError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected, Message: "deadlock"})
	assert.True(t, IsRetryable(err))
}

func TestMapPgError_ConstraintViolationIsRejection(t *testing.T) {
	err := mapPgError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Message: "fk"})
	require.ErrorIs(t, err, ErrRemoteRejected)
	assert.False(t, IsRetryable(err))
}

func TestMapPgError_InsufficientPrivilege(t *testing.T) {
	err := mapPgError(&pgconn.PgError{Code: pgerrcode.InsufficientPrivilege, Message: "denied"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMapPgError_PlainDriverErrorIsUnavailable(t *testing.T) {
	err := mapPgError(fmt.Errorf("dial tcp: %w", errors.New("connection refused")))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCollectColumns_SortedUnion(t *testing.T) {
	rows := []Row{
		{"id": "1", "name": "a"},
		{"id": "2", "balance": 3.0},
	}

	assert.Equal(t, []string{"balance", "id", "name"}, collectColumns(rows))
}
