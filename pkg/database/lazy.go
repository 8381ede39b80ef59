package database

import (
	"context"
	"sync"

	"github.com/glorpus-work/plugport/pkg/errors"
)

// LazyExecutor opens its connection pool on the first statement, so plugins
// without a migration never touch the database.
type LazyExecutor struct {
	driver string
	dsn    string

	mu   sync.Mutex
	exec *Executor
	err  error
}

// NewLazyExecutor creates an executor for driver and dsn without connecting.
func NewLazyExecutor(driver, dsn string) *LazyExecutor {
	return &LazyExecutor{driver: driver, dsn: dsn}
}

// ExecSQL connects if needed and executes stmt. A failed connection is
// returned for every later statement, unless it failed because ctx was
// canceled or timed out; the next call then connects again.
func (l *LazyExecutor) ExecSQL(ctx context.Context, stmt string) error {
	exec, err := l.open(ctx)
	if err != nil {
		return err
	}
	return exec.ExecSQL(ctx, stmt)
}

func (l *LazyExecutor) open(ctx context.Context) (*Executor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.exec != nil || l.err != nil {
		return l.exec, l.err
	}
	exec, err := Open(ctx, l.driver, l.dsn)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			l.err = err
		}
		return nil, err
	}
	l.exec = exec
	return exec, nil
}

// Close releases the pool if it was opened.
func (l *LazyExecutor) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.exec == nil {
		return nil
	}
	return l.exec.Close()
}
