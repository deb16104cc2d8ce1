// Package faultguard wraps store operations and decides, per fault kind,
// whether a failure is absorbed or returned to the caller.
//
// Transient network faults are always absorbed: observers are told the store is
// unavailable and the operation yields its zero value with a nil error.
// Programming faults (malformed statements, parameter mismatches) are absorbed
// only for mutations, whose zero result means "rejected". Everything else is
// returned as an *apperrors.AppError.
package faultguard

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
)

// Observer is told when an operation lost its connection to the store.
type Observer interface {
	NetworkUnavailable(ctx context.Context, op string, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, op string, err error)

func (f ObserverFunc) NetworkUnavailable(ctx context.Context, op string, err error) {
	f(ctx, op, err)
}

// Observers notifies each of its non-nil members in order.
type Observers []Observer

func (os Observers) NetworkUnavailable(ctx context.Context, op string, err error) {
	for _, o := range os {
		if o != nil {
			o.NetworkUnavailable(ctx, op, err)
		}
	}
}

// Flag is an Observer that remembers whether it was signalled.
type Flag struct {
	raised atomic.Bool
}

func (f *Flag) NetworkUnavailable(context.Context, string, error) {
	f.raised.Store(true)
}

// Raised reports whether a network fault was observed.
func (f *Flag) Raised() bool {
	return f.raised.Load()
}

type observerKey struct{}

// WithObserver attaches a call-scoped observer, notified in addition to the
// guard's own observer.
func WithObserver(ctx context.Context, o Observer) context.Context {
	return context.WithValue(ctx, observerKey{}, o)
}

// Guard holds the session-level observer.
type Guard struct {
	observer Observer
}

// New creates a Guard. observer may be nil.
func New(observer Observer) *Guard {
	return &Guard{observer: observer}
}

func (g *Guard) notify(ctx context.Context, op string, err error) {
	if g != nil && g.observer != nil {
		g.observer.NetworkUnavailable(ctx, op, err)
	}
	if o, ok := ctx.Value(observerKey{}).(Observer); ok && o != nil {
		o.NetworkUnavailable(ctx, op, err)
	}
}

// Query runs a read-only store operation.
func Query[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, error)) (T, error) {
	return run(ctx, g, op, false, fn)
}

// Mutate runs a store mutation. The zero value of T must mean failure.
func Mutate[T any](ctx context.Context, g *Guard, op string, fn func(context.Context) (T, error)) (T, error) {
	return run(ctx, g, op, true, fn)
}

func run[T any](ctx context.Context, g *Guard, op string, mutation bool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	result, err := fn(ctx)
	if err == nil {
		return result, nil
	}

	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("operation", op))
	kind := apperrors.Classify(err)
	switch {
	case kind == apperrors.KindTransientNetwork:
		logger.Warn("Store unreachable, operation dropped", slog.String("error", err.Error()))
		g.notify(ctx, op, err)
		return zero, nil
	case kind == apperrors.KindProgramming && mutation:
		logger.Warn("Store rejected mutation", slog.String("error", err.Error()))
		return zero, nil
	case errors.Is(err, apperrors.ErrNotFound):
		return zero, err
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return zero, err
		}
		logger.Error("Store operation failed", slog.String("kind", kind.String()), slog.String("error", err.Error()))
		return zero, &apperrors.AppError{Kind: kind, Op: op, Err: err}
	}
}
