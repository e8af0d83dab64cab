package generate_slots

import "errors"

var (
	// ErrInvalidInput is returned on missing or malformed input.
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrVetNotFound is returned when the target id does not resolve to
	// an account.
	ErrVetNotFound = errors.New("generate_slots: veterinarian not found")

	// ErrInvalidRole is returned when the target account is not a
	// veterinarian or admin.
	ErrInvalidRole = errors.New("generate_slots: target is not a veterinarian")

	// ErrAccessDenied is returned when the caller may not generate slots
	// for the target veterinarian.
	ErrAccessDenied = errors.New("generate_slots: access denied")

	// ErrSlotsOverlap is returned when the veterinarian already has
	// slots inside the requested range. No partial generation happens.
	ErrSlotsOverlap = errors.New("generate_slots: existing slots overlap the requested range")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("generate_slots: internal error")
)
