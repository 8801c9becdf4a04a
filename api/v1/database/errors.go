package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound   = errors.New("user does not exist")
	ErrUsernameExists = errors.New("username already exists")
	ErrDatabaseError  = errors.New("database error occurred")

	// ErrValueTooLong marks input the columns cannot hold. It is always
	// wrapped together with ErrDatabaseError.
	ErrValueTooLong = errors.New("value too long")
)

// InvalidDateError reports a date that has the YYYY-MM-DD shape but is not
// a real calendar date. Param names the input it came from.
type InvalidDateError struct {
	Param string
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %q", e.Param, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

func IsUsernameExistsError(err error) bool {
	return errors.Is(err, ErrUsernameExists)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isDateError(code string) bool {
	return code == pgerrcode.InvalidDatetimeFormat || code == pgerrcode.DatetimeFieldOverflow
}

// wrapError tags err with ErrDatabaseError unless it is one of the
// conditions callers are expected to branch on.
func wrapError(err error, msg string) error {
	switch pgErrorCode(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%s: %w", msg, ErrUsernameExists)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%s: %w", msg, ErrUserNotFound)
	case pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: %s: %w: %w", ErrDatabaseError, msg, ErrValueTooLong, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDatabaseError, msg, err)
}
