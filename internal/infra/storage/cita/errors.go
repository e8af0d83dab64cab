package cita

import "errors"

var (
	// ErrCitaNotFound is returned when the appointment does not exist.
	ErrCitaNotFound = errors.New("cita.repository: cita not found")

	// ErrAlreadyFinalizada is returned when the guarded finalize update
	// touches zero rows because the appointment was already finalized.
	ErrAlreadyFinalizada = errors.New("cita.repository: cita already finalized")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("cita.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("cita.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("cita.repository: failed to scan row")

	// ErrEncodePayload is returned when a JSON column cannot be encoded
	// or decoded.
	ErrEncodePayload = errors.New("cita.repository: failed to encode payload")
)
