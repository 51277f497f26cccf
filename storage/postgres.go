package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ev-warehouse/models"
	"ev-warehouse/utils"
)

// Warehouse is the single handle to the backing Postgres store. One stage
// holds it exclusively for the stage's duration; callers must Close it on
// every exit path.
type Warehouse struct {
	db     *sqlx.DB
	logger *utils.Logger
}

// Open connects to Postgres and verifies the connection with a retried ping.
// A store that cannot be reached after the retries is a fatal condition.
func Open(dsn string, maxRetries int, logger *utils.Logger) (*Warehouse, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: maxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &Warehouse{db: db, logger: logger}, nil
}

// Close releases the store handle.
func (w *Warehouse) Close() error {
	return w.db.Close()
}

// exec runs one statement, wrapping any failure with the step name and the
// failing SQL so the statement is available for diagnosis.
func (w *Warehouse) exec(ctx context.Context, step, query string, args ...interface{}) error {
	if _, err := w.db.ExecContext(ctx, query, args...); err != nil {
		w.logger.Error("[storage] %s failed: %v", step, err)
		w.logger.Error("[storage] failing statement:\n%s", query)
		return &models.StatementError{Step: step, Query: query, Err: err}
	}
	return nil
}

// count returns the number of rows in the given table.
func (w *Warehouse) count(ctx context.Context, table string) (int64, error) {
	var n int64
	query := "SELECT COUNT(*) FROM " + table
	if err := w.db.GetContext(ctx, &n, query); err != nil {
		return 0, &models.StatementError{Step: "count " + table, Query: query, Err: err}
	}
	return n, nil
}
