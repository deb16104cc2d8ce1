package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VShkaberda/Payments-contol/internal/handlers"
	"github.com/VShkaberda/Payments-contol/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Open the session and serve the local HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr != "" {
				a.cfg.ListenAddr = addr
			}
			return runServer(ctx, a)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR)")
	return cmd
}

func runServer(ctx context.Context, a *app) error {
	logger := a.logger

	if a.cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSAllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"X-Request-ID", handlers.NetworkUnavailableHeader},
		MaxAge:        12 * time.Hour,
	}))

	if a.cfg.RateLimit != "" {
		lim, err := middleware.NewLimiter(a.cfg.RateLimit)
		if err != nil {
			return err
		}
		r.Use(middleware.RateLimit(lim))
	}

	handlers.RegisterRoutes(r, a.session)

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("addr", a.cfg.ListenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
