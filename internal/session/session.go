// Package session opens the one store session a process works with: a single
// connection, the identity behind it, and the services bound to both.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/core/domain"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/VShkaberda/Payments-contol/internal/core/services"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/VShkaberda/Payments-contol/internal/repositories/database/pgsql"
)

// Options configure how a session is opened.
type Options struct {
	Rules pgsql.ListingRules
	// Observer is told about every absorbed network fault of the session.
	Observer faultguard.Observer
	// SelfTest runs the trivial query before the access check.
	SelfTest bool
}

// Session is an authenticated store session. Store operations must not
// overlap; callers serialize them with Lock and Unlock.
type Session struct {
	mu       sync.Mutex
	conn     *sessionConn
	user     domain.User
	services *portssvc.ServiceContainer

	closeOnce sync.Once
	closeErr  error
}

// Open acquires a connection from db, checks access and loads the current user.
// A connection lost later is replaced from db on the next operation.
// It returns apperrors.ErrAccessDenied or apperrors.ErrLoginFailed (via
// errors.Is) for the two refusals, and never leaks the connection on failure.
func Open(ctx context.Context, db *sql.DB, opts Options) (*Session, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	conn, err := newSessionConn(ctx, db)
	if err != nil {
		return nil, apperrors.NewAppError("open session", err)
	}

	opened := false
	defer func() {
		if !opened {
			_ = conn.Close()
		}
	}()

	guard := faultguard.New(faultguard.Observers{conn, opts.Observer})
	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(conn, opts.Rules), guard)

	if opts.SelfTest {
		ok, err := container.Session.Ping(ctx)
		if err != nil {
			return nil, fmt.Errorf("self-test: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("self-test: %w", apperrors.ErrNetworkUnavailable)
		}
	}

	permitted, err := container.Session.CheckAccess(ctx)
	if err != nil {
		return nil, fmt.Errorf("access check: %w", err)
	}
	if !permitted {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := container.Session.LoadCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no profile for the logged-in identity: %w", apperrors.ErrAccessDenied)
		}
		return nil, fmt.Errorf("load current user: %w", err)
	}

	logger.Info("Session opened",
		slog.Int64("user_id", user.UserID),
		slog.String("user_name", user.DisplayName),
		slog.Bool("is_super_user", user.IsSuperUser))

	opened = true
	return &Session{conn: conn, user: user, services: container}, nil
}

// User returns a copy of the session's user.
func (s *Session) User() domain.User {
	return s.user
}

// Services returns the services bound to this session.
func (s *Session) Services() *portssvc.ServiceContainer {
	return s.services
}

// Lock reserves the session for one store operation.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Close releases the connection. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
