package marina

import "errors"

var (
	// ErrMalformedRecord is returned when a boat line does not have the expected number of fields.
	ErrMalformedRecord = errors.New("malformed boat record")
	// ErrInvalidField is returned by the strict codec when a field cannot be converted.
	ErrInvalidField = errors.New("invalid boat field")
	// ErrNotFound is returned when no boat has the requested name.
	ErrNotFound = errors.New("no boat with that name")
	// ErrFull is returned when the inventory is at capacity.
	ErrFull = errors.New("boat inventory full")
	// ErrOverpayment is returned when a payment is more than the amount owed.
	ErrOverpayment = errors.New("payment is more than the amount owed")
)
