package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintViolation is raised when the store rejects a statement with an
// integrity-constraint error (unique, foreign key, not-null, check). It is
// translated to a 4xx at the HTTP boundary.
type ConstraintViolation struct {
	Code       string // SQLSTATE, e.g. 23505
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation (%s): %s", e.Code, e.Constraint)
	}
	return fmt.Sprintf("constraint violation (%s)", e.Code)
}

func (e *ConstraintViolation) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err wraps a ConstraintViolation.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

// wrapDBError maps SQLSTATE class 23 (integrity constraint violation) errors
// onto ConstraintViolation and leaves everything else untouched.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return &ConstraintViolation{
			Code:       pgErr.Code,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	return err
}
