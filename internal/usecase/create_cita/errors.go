package create_cita

import "errors"

var (
	// ErrInvalidInput is returned on missing or malformed input.
	ErrInvalidInput = errors.New("create_cita: invalid input data")

	// ErrSlotNotFound is returned when the selected slot does not exist.
	ErrSlotNotFound = errors.New("create_cita: slot not found")

	// ErrSlotNotAvailable is returned when the slot was taken by another
	// booking first. Callers offer "pick another slot", not "fix your
	// form".
	ErrSlotNotAvailable = errors.New("create_cita: slot is no longer available")

	// ErrComunaNotInSlot is returned when the chosen comuna is not part
	// of the slot's generation batch.
	ErrComunaNotInSlot = errors.New("create_cita: comuna is not covered by this slot")

	// ErrComunaNotFound is returned when the comuna id does not exist.
	ErrComunaNotFound = errors.New("create_cita: comuna not found")

	// ErrRegionNotFound is returned when the region id does not exist.
	ErrRegionNotFound = errors.New("create_cita: region not found")

	// ErrServicioNotFound is returned when a requested service does not
	// exist in the catalog.
	ErrServicioNotFound = errors.New("create_cita: servicio not found")

	// ErrServicioNoDisponible is returned when a requested service does
	// not apply to the pet's species.
	ErrServicioNoDisponible = errors.New("create_cita: servicio not available for this species")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_cita: internal error")
)
