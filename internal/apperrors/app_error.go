package apperrors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind tags a store fault with the way callers are expected to handle it.
type Kind int

const (
	KindUnclassified Kind = iota
	KindTransientNetwork
	KindProgramming
	KindLoginFailed
)

func (k Kind) String() string {
	switch k {
	case KindTransientNetwork:
		return "transient_network"
	case KindProgramming:
		return "programming"
	case KindLoginFailed:
		return "login_failed"
	default:
		return "unclassified"
	}
}

// sentinel maps a kind onto the error value callers match with errors.Is.
func (k Kind) sentinel() error {
	switch k {
	case KindTransientNetwork:
		return ErrNetworkUnavailable
	case KindProgramming:
		return ErrRejectedOperation
	case KindLoginFailed:
		return ErrLoginFailed
	default:
		return ErrUnclassified
	}
}

// AppError is a classified store fault.
type AppError struct {
	Kind Kind
	Op   string
	Err  error
}

// NewAppError classifies err and wraps it for the named operation.
func NewAppError(op string, err error) *AppError {
	return &AppError{Kind: Classify(err), Op: op, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports a match against the sentinel of the error's kind, so that
// errors.Is(err, ErrLoginFailed) works through the wrapper.
func (e *AppError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// transientSQLStates are PostgreSQL codes outside class 08 that still mean the
// server went away or is not accepting connections.
var transientSQLStates = map[string]struct{}{
	"57P01": {}, // admin_shutdown
	"57P02": {}, // crash_shutdown
	"57P03": {}, // cannot_connect_now
}

// Classify sorts err into a fault kind. A nil error is unclassified.
func Classify(err error) Kind {
	if err == nil {
		return KindUnclassified
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	switch {
	case errors.Is(err, ErrNetworkUnavailable):
		return KindTransientNetwork
	case errors.Is(err, ErrRejectedOperation):
		return KindProgramming
	case errors.Is(err, ErrLoginFailed):
		return KindLoginFailed
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	if pgconn.Timeout(err) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) {
		return KindTransientNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransientNetwork
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		// Connect errors carrying an auth failure were matched as PgError above.
		return KindTransientNetwork
	}

	return KindUnclassified
}

func classifySQLState(code string) Kind {
	if len(code) < 2 {
		return KindUnclassified
	}
	if _, ok := transientSQLStates[code]; ok {
		return KindTransientNetwork
	}
	switch code[:2] {
	case "08":
		return KindTransientNetwork
	case "28":
		return KindLoginFailed
	case "42":
		if code == "42501" { // insufficient_privilege must surface
			return KindUnclassified
		}
		return KindProgramming
	case "22", "07":
		return KindProgramming
	}
	return KindUnclassified
}
