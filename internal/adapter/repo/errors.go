package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// The store surfaces constraint violations as driver-specific errors.
// Classify them here so callers only ever see the domain taxonomy.

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

func isFKViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
