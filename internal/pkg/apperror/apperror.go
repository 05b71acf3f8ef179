package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Reasons behind ErrInvalidCredentials. They are logged, never shown.
	ErrUserNotFound  = errors.New("email not registered")
	ErrWrongPassword = errors.New("wrong password")
)

type AppError struct {
	Err     error  // kind, one of the sentinels above
	Message string // human readable, safe to render
	Field   string // optional: form field at fault
	Cause   error  // optional: underlying reason, kept for logs
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NotFound(resource string, id any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func DuplicateEmail(email string) *AppError {
	return &AppError{
		Err:     ErrDuplicateEmail,
		Message: "This email is already registered.",
		Field:   "email",
		Cause:   fmt.Errorf("duplicate email %s", email),
	}
}

// InvalidCredentials hides which half of the pair was wrong from the caller.
func InvalidCredentials(reason error) *AppError {
	return &AppError{
		Err:     ErrInvalidCredentials,
		Message: "Invalid email or password.",
		Cause:   reason,
	}
}

func Unauthenticated() *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: "Please log in to continue.",
	}
}

// Message returns the user facing text for err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
