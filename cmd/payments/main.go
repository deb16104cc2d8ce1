package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/VShkaberda/Payments-contol/internal/platform/config"
	"github.com/spf13/cobra"
)

var Version = "dev"

// Exit codes reported for the two session refusals.
const (
	exitFailure      = 1
	exitAccessDenied = 2
	exitLoginFailed  = 3
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "payments",
		Short:         "Payment request approval service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(pingCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, userMessage(code, err))
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrAccessDenied):
		return exitAccessDenied
	case errors.Is(err, apperrors.ErrLoginFailed):
		return exitLoginFailed
	default:
		return exitFailure
	}
}

// userMessage is what the operator sees on stderr. The two refusals get fixed
// texts; the details of those are in the log.
func userMessage(code int, err error) string {
	switch code {
	case exitAccessDenied:
		return "Access denied: your account is not allowed to use payment requests."
	case exitLoginFailed:
		return "Login failed: the database did not accept your credentials."
	default:
		return "Unexpected error: " + err.Error()
	}
}

// newLogger builds the JSON logger configured by LOG_LEVEL and LOG_FILE and
// installs it as the default. The returned closer releases the log file.
func newLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var out io.Writer = os.Stdout
	closer := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}
