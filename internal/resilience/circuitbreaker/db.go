package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
)

// Conn is the query surface a DBCircuitBreaker protects. *sql.DB satisfies it.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DBCircuitBreaker guards a database handle. It has the same QueryContext and
// ExecContext methods, so the Postgres repository accepts it in place of *sql.DB.
type DBCircuitBreaker struct {
	cb   *CircuitBreaker
	conn Conn
}

// DBConfig returns the breaker settings for the announcement store.
// It opens after 5 straight failures and probes again after 30 seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		Expected:         IsClientSQLError,
	}
}

// NewDBCircuitBreaker wraps conn using DBConfig.
func NewDBCircuitBreaker(conn Conn) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(conn, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps conn with a breaker built from cfg.
func NewDBCircuitBreakerWithConfig(conn Conn, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{cb: New(cfg), conn: conn}
}

// QueryContext runs the query unless the circuit is open.
func (d *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return guard(d.cb, func() (*sql.Rows, error) {
		return d.conn.QueryContext(ctx, query, args...)
	})
}

// ExecContext runs the statement unless the circuit is open.
func (d *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return guard(d.cb, func() (sql.Result, error) {
		return d.conn.ExecContext(ctx, query, args...)
	})
}

// State returns the current state of the circuit breaker.
func (d *DBCircuitBreaker) State() gobreaker.State {
	return d.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (d *DBCircuitBreaker) IsOpen() bool {
	return d.cb.IsOpen()
}

// guard runs fn through cb. Rejections name the circuit and still match
// gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
func guard[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := cb.breaker.Execute(func() (interface{}, error) { return fn() })
	if err != nil {
		if IsRejection(err) {
			return zero, fmt.Errorf("%s circuit: %w", cb.Name(), err)
		}
		return zero, err
	}
	return out.(T), nil
}

// IsClientSQLError reports Postgres data exceptions (class 22) and integrity
// constraint violations (class 23). The server answered, so they say nothing
// about store health.
func IsClientSQLError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	class := pgErr.Code[:2]
	return class == "22" || class == "23"
}
