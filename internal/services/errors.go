package services

import "errors"

var (
	ErrNotFound             = errors.New("record not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidComponentList = errors.New("invalid component list")
)

// ValidationError carries the first failing field so handlers can report it.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Message
	}
	return err.Field + ": " + err.Message
}

func (err *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
