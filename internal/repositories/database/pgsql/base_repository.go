package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// The pool is opened at startup and closed at shutdown by the caller; no
// repository owns its lifecycle.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
