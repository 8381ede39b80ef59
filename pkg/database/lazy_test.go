package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyExecutor(t *testing.T) {
	_, mock, err := sqlmock.NewWithDSN("lazy-executor-test")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE pp_demo (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE pp_old")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	exec := NewLazyExecutor("sqlmock", "lazy-executor-test")
	assert.NoError(t, exec.Close(), "closing an unopened executor is a no-op")

	ctx := context.Background()
	require.NoError(t, exec.ExecSQL(ctx, "CREATE TABLE pp_demo (id INT)"))
	require.NoError(t, exec.ExecSQL(ctx, "DROP TABLE pp_old"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLazyExecutor_ConnectFailureRepeats(t *testing.T) {
	exec := NewLazyExecutor("no-such-driver", "dsn")
	ctx := context.Background()

	err1 := exec.ExecSQL(ctx, "SELECT 1")
	err2 := exec.ExecSQL(ctx, "SELECT 2")
	require.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.NoError(t, exec.Close())
}

func TestLazyExecutor_RetriesAfterCanceledConnect(t *testing.T) {
	_, mock, err := sqlmock.NewWithDSN("lazy-executor-retry")
	require.NoError(t, err)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE pp_demo (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	exec := NewLazyExecutor("sqlmock", "lazy-executor-retry")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	err = exec.ExecSQL(canceled, "CREATE TABLE pp_demo (id INT)")
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, exec.ExecSQL(context.Background(), "CREATE TABLE pp_demo (id INT)"))

	mock.ExpectClose()
	assert.NoError(t, exec.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
