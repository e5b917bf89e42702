package util

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey reports a unique constraint violation. TranslateError covers
// the normal path; the SQLSTATE check catches connections opened without it.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}
