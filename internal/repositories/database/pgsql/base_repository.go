package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/opsledger/deposit_recon_app/internal/apperrors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryErr wraps a store failure so callers can recognize it with
// errors.Is(err, apperrors.ErrQueryFailed) and degrade gracefully.
func queryErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrQueryFailed, op, err)
}
