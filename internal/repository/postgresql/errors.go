package postgresql

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// rowError maps a single-row lookup failure. A missing row, or an id that is
// not a UUID, becomes notFound; anything else is a store failure.
func rowError(err error, notFound error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) || database.IsInvalidText(err) {
		return notFound
	}
	return apperror.Store(op, err)
}

// execError is rowError for statements run through Exec.
func execError(err error, notFound error, op string) error {
	if database.IsInvalidText(err) {
		return notFound
	}
	return apperror.Store(op, err)
}
