package main

import (
	"context"
	"log/slog"

	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/VShkaberda/Payments-contol/internal/platform/config"
	"github.com/VShkaberda/Payments-contol/internal/repositories/database/pgsql"
	"github.com/VShkaberda/Payments-contol/internal/session"
	"github.com/VShkaberda/Payments-contol/pkg/database"
)

// app is everything a command needs once the store session is open.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *session.Session
	cleanup []func()
}

func (a *app) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

// bootstrap loads the configuration and opens the store session. The self-test
// runs when selfTest is set or ENABLE_DB_CHECK asks for it.
func bootstrap(ctx context.Context, selfTest bool) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger}
	a.cleanup = append(a.cleanup, func() { _ = closeLog() })

	ctx = middleware.WithLogger(ctx, logger)

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cleanup = append(a.cleanup, func() { database.ClosePgxPool(pool) })

	db := database.OpenDB(pool)
	a.cleanup = append(a.cleanup, func() { _ = db.Close() })

	sess, err := session.Open(ctx, db, session.Options{
		Rules: pgsql.ListingRules{
			UrgencySortUsers: cfg.UrgencySortUsers,
			ApproverAliases:  cfg.ApproverAliases,
		},
		Observer: faultguard.ObserverFunc(func(ctx context.Context, op string, err error) {
			middleware.GetLoggerFromCtx(ctx).Warn("Store connection lost", slog.String("operation", op))
		}),
		SelfTest: selfTest || cfg.EnableDBCheck,
	})
	if err != nil {
		logger.Error("Failed to open session", slog.String("error", err.Error()))
		a.Close()
		return nil, err
	}
	a.session = sess
	a.cleanup = append(a.cleanup, func() { _ = sess.Close() })

	return a, nil
}
