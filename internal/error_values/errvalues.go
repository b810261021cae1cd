package errorvalues

import (
	"errors"
	"fmt"
)

// Class sentinels. Handlers map on these with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrUserNotFound               = fmt.Errorf("user doesn't exists: %w", ErrNotFound)
	ErrAchievementNotFound        = fmt.Errorf("achievement doesn't exists: %w", ErrNotFound)
	ErrHabitEntryNotFound         = fmt.Errorf("habit entry doesn't exists: %w", ErrNotFound)
	ErrUserExists                 = fmt.Errorf("such user already exists: %w", ErrConflict)
	ErrAchievementAlreadyUnlocked = fmt.Errorf("achievement already unlocked: %w", ErrConflict)
	ErrStorageDegraded            = errors.New("storage is in read-only mode")
)

// Validation wraps a message into ErrValidation.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
