package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// RoomsUnavailableError reports rooms that are already committed to an
// overlapping stay. Always recoverable: the caller picks different rooms or
// dates and retries.
type RoomsUnavailableError struct {
	RoomNumbers []string
}

func (e *RoomsUnavailableError) Error() string {
	return fmt.Sprintf("room (%s) is already booked for this period", strings.Join(e.RoomNumbers, ", "))
}

// IsNotFound reports whether err means a referenced record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

const mysqlDuplicateEntry = 1062

// isDuplicateKey detects a storage-level unique violation. Concurrent
// writers can both pass the guard check before either commits; the unique
// index then rejects the loser, and we surface that exactly like a
// pre-write conflict.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	// fallback for drivers/tests that only expose the message
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
