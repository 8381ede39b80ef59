package database

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_ExecSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE demo_plugin (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bad_syntax")).
		WillReturnError(fmt.Errorf("syntax error"))
	mock.ExpectClose()

	exec := NewExecutor(db)
	ctx := context.Background()

	assert.NoError(t, exec.ExecSQL(ctx, "CREATE TABLE demo_plugin (id INT)"))
	err = exec.ExecSQL(ctx, "INSERT INTO bad_syntax")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")

	require.NoError(t, exec.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "mysql", " ")
	assert.ErrorIs(t, err, errors.ErrDatabaseConfig)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "no-such-driver", "dsn")
	assert.Error(t, err)
}

func TestNoopExecutor(t *testing.T) {
	exec := NewNoopExecutor()
	ctx := context.Background()

	require.NoError(t, exec.ExecSQL(ctx, "CREATE TABLE a (id INT)"))
	require.NoError(t, exec.ExecSQL(ctx, "DROP TABLE b"))

	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "DROP TABLE b"}, exec.Statements())
	assert.NoError(t, exec.Close())
}
