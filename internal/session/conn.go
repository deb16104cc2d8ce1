package session

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"github.com/VShkaberda/Payments-contol/internal/middleware"
)

// sessionConn is the connection the session's repositories run on. A network
// fault observed by the guard marks it stale, and the next operation swaps in
// a fresh connection from the pool. When no connection can be had the stale
// one is kept, so the call fails as a network fault and the session lives on.
type sessionConn struct {
	db *sql.DB

	mu    sync.Mutex
	conn  *sql.Conn
	stale bool
}

func newSessionConn(ctx context.Context, db *sql.DB) (*sessionConn, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &sessionConn{db: db, conn: conn}, nil
}

// NetworkUnavailable implements faultguard.Observer.
func (c *sessionConn) NetworkUnavailable(context.Context, string, error) {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

func (c *sessionConn) current(ctx context.Context) *sql.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stale {
		return c.conn
	}
	fresh, err := c.db.Conn(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Store still unreachable, keeping the lost connection",
			slog.String("error", err.Error()))
		return c.conn
	}
	_ = c.conn.Close()
	c.conn = fresh
	c.stale = false
	middleware.GetLoggerFromCtx(ctx).Info("Store connection re-acquired")
	return c.conn
}

func (c *sessionConn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.current(ctx).ExecContext(ctx, query, args...)
}

func (c *sessionConn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.current(ctx).QueryContext(ctx, query, args...)
}

func (c *sessionConn) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.current(ctx).QueryRowContext(ctx, query, args...)
}

func (c *sessionConn) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return c.current(ctx).BeginTx(ctx, opts)
}

func (c *sessionConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
