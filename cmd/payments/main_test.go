package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/VShkaberda/Payments-contol/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitAccessDenied, exitCode(fmt.Errorf("open: %w", apperrors.ErrAccessDenied)))
	assert.Equal(t, exitLoginFailed, exitCode(apperrors.NewAppError("open session", &pgconn.PgError{Code: "28P01"})))
	assert.Equal(t, exitFailure, exitCode(errors.New("boom")))
}

func TestUserMessage(t *testing.T) {
	loginErr := apperrors.NewAppError("open session", &pgconn.PgError{Code: "28P01", Message: "password authentication failed for user \"bob\""})

	msg := userMessage(exitCode(loginErr), loginErr)
	assert.Equal(t, "Login failed: the database did not accept your credentials.", msg)
	assert.NotContains(t, msg, "bob")

	assert.Equal(t, "Access denied: your account is not allowed to use payment requests.",
		userMessage(exitAccessDenied, apperrors.ErrAccessDenied))
	assert.Equal(t, "Unexpected error: boom", userMessage(exitFailure, errors.New("boom")))
}
