package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Repositories and services wrap these with fmt.Errorf("...: %w")
// and handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrPermission      = errors.New("permission denied")
	ErrExternalService = errors.New("external service error")
	ErrStorage         = errors.New("storage error")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Permission(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrPermission)...)
}

func ExternalService(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrExternalService)...)
}

func Storage(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrStorage)...)
}
