package slots

import "errors"

var (
	// ErrSlotNotFound is returned when a referenced slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrAccessDenied is returned when the caller may not operate on the
	// targeted veterinarian's slots.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("slots service: internal error")
)
