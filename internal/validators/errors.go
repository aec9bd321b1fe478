package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs or
	// pointers to structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field scope names a field the
	// struct does not have.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrInvalidRequest wraps every rule violation found in a request body.
	ErrInvalidRequest = errors.New("invalid request")
)
