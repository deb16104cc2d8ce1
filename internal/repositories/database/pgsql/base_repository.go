package pgsql

import (
	"context"

	"github.com/VShkaberda/Payments-contol/internal/dbx"
)

// BaseRepository provides common functionality for all repositories.
// DB is the session's connection; every repository of a provider shares it.
type BaseRepository struct {
	DB dbx.Conn
}

// inTx runs fn inside a transaction on the session connection.
func (r *BaseRepository) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTx(ctx, r.DB, nil, fn)
}
