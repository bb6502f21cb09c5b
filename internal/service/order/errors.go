package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDate           = errors.New("invalid pickup time")
	ErrFieldTooLong          = errors.New("field value too long")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrForbidden         = errors.New("operation not allowed for this user")
)

var ErrUndefinedStatus = errors.New("no handler for order status")
