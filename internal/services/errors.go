package services

import "errors"

// ValidationError reports a missing or malformed input field. The reason is
// safe to show to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}

// ErrInvalidCredentials is returned on login when no account matches the
// supplied phone and password. Unknown phone and wrong password are
// deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid phone or password")

// ErrStorageDisabled is returned when an operation needs object storage and
// none is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")
