package repos

import "strings"

// IsUniqueViolation recognizes a unique-index violation from either
// supported driver. The constraint is the authoritative uniqueness
// check; callers map this to a conflict error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
