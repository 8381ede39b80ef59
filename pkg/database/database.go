// Package database executes plugin migration statements against the
// application database.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/errors"
)

// Executor runs single SQL statements on a connection pool.
type Executor struct {
	db *sql.DB
}

// NewExecutor wraps an existing connection pool.
func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Open opens a connection pool for driver and dsn and verifies it with a
// ping. The driver must be registered by the caller.
func Open(ctx context.Context, driver, dsn string) (*Executor, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.Wrap(errors.ErrDatabaseConfig, "empty dsn")
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s database: %w", driver, err)
	}
	return &Executor{db: db}, nil
}

// ExecSQL executes stmt and discards its result.
func (e *Executor) ExecSQL(ctx context.Context, stmt string) error {
	res, err := e.db.ExecContext(ctx, stmt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil {
		logger.Debug("statement executed", logger.Fields{"rows": n})
	}
	return nil
}

// Close releases the connection pool.
func (e *Executor) Close() error {
	return e.db.Close()
}

// NoopExecutor records statements instead of executing them.
type NoopExecutor struct {
	mu         sync.Mutex
	statements []string
}

// NewNoopExecutor creates a dry-run executor.
func NewNoopExecutor() *NoopExecutor {
	return &NoopExecutor{}
}

// ExecSQL records stmt.
func (n *NoopExecutor) ExecSQL(_ context.Context, stmt string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statements = append(n.statements, stmt)
	return nil
}

// Statements returns the recorded statements in execution order.
func (n *NoopExecutor) Statements() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.statements...)
}

// Close is a no-op.
func (n *NoopExecutor) Close() error { return nil }
