package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate maps postgres unique violations so handlers can answer 409
	// without leaking constraint names.
	ErrDuplicate = errors.New("duplicate value for unique field")

	// ErrInvalidReference maps foreign-key violations: the payload referenced a
	// row (church, rank, skill, location) that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// MapError normalizes driver errors into the repository's sentinel errors.
// Anything unrecognized is returned as-is for the error handler to report.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrInvalidReference
		}
	}

	return err
}
