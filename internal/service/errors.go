package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrDuplicate        = errors.New("already exists")
	ErrInactiveUser     = errors.New("account is deactivated")
	ErrInvalidLogin     = errors.New("invalid username or password")
)

var (
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrInvalidImageType = fmt.Errorf("%w: file type not allowed", ErrValidation)
	ErrNoImage          = fmt.Errorf("%w: no image selected", ErrValidation)
	ErrUsernameTaken    = fmt.Errorf("%w: username", ErrDuplicate)
	ErrEmailTaken       = fmt.Errorf("%w: email", ErrDuplicate)
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// mapRepoError converts repository lookups into service errors.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	default:
		return err
	}
}
