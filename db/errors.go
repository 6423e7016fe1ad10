package db

import (
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrUserExists is returned when a create or update would claim a
	// userid that is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrGroupExists is returned when explicitly creating a group whose
	// name is already taken.
	ErrGroupExists = errors.New("group already exists")

	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
)

// MembersNotFoundError reports which userids of a membership update do not
// exist. The whole update is rejected, not just the missing members.
type MembersNotFoundError struct {
	UserIDs []string
}

func (e *MembersNotFoundError) Error() string {
	return fmt.Sprintf("cannot update group membership because the following users don't exist: %s",
		strings.Join(e.UserIDs, ","))
}

// isUniqueViolation reports whether err is a SQLite unique or primary key
// constraint violation, e.g. from a racing concurrent create.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}
