package citas

import "errors"

var (
	// ErrCitaNotFound is returned when the appointment does not exist.
	ErrCitaNotFound = errors.New("cita not found")

	// ErrAccessDenied is returned when the caller may not see the
	// appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("citas service: internal error")
)
