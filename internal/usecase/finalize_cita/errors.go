package finalize_cita

import "errors"

var (
	// ErrCitaNotFound - appointment does not exist
	ErrCitaNotFound = errors.New("cita not found")

	// ErrAlreadyFinalizada - appointment was already finalized, the total is frozen
	ErrAlreadyFinalizada = errors.New("cita already finalizada")

	// ErrAccessDenied - caller may not finalize this appointment
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal - internal error (database, unexpected failures)
	ErrInternal = errors.New("internal error")
)
