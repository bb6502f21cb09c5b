package account

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCategory       = errors.New("invalid ride category")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrFieldTooLong          = errors.New("field value too long")

	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")
	ErrPlateTaken = errors.New("number plate already registered")

	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrNotRider           = errors.New("user is not a rider")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrAccountPending     = errors.New("account pending")
)

// ConflictError несет занятое значение, чтобы его можно было показать клиенту.
type ConflictError struct {
	Err   error
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
