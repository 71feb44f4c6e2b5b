package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// limitArg converts a page limit into the LIMIT argument: a
// non-positive limit becomes NULL, which PostgreSQL treats as no cap.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

// isUniqueViolation reports whether err is a unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
