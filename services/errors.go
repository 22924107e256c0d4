package services

import (
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

var (
	ErrDatabaseUnavailable = stderrors.New("database connection failed")
	ErrBookingNotFound     = stderrors.New("booking not found")
	ErrRoomNotFound        = stderrors.New("room not found")
	ErrRoomOccupied        = stderrors.New("room is already occupied")
)

// MySQL server error numbers for constraint violations.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// ConstraintKind names the constraint a write tripped over, or "" when the
// error is not a recognised MySQL constraint violation.
func ConstraintKind(err error) string {
	var merr *mysql.MySQLError
	if !errors.As(err, &merr) {
		return ""
	}
	switch merr.Number {
	case mysqlErrDuplicateEntry:
		return "duplicate_entry"
	case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
		return "foreign_key"
	}
	return ""
}

// Details is the message passed back to API clients for a failed write. Driver
// errors are reported by their root cause, without the context added on the
// way up; this package's own errors keep that context since it names the room
// or booking involved.
func Details(err error) string {
	if err == nil {
		return ""
	}
	cause := errors.Cause(err)
	for _, own := range []error{ErrBookingNotFound, ErrRoomNotFound, ErrRoomOccupied} {
		if cause == own {
			return err.Error()
		}
	}
	return cause.Error()
}
