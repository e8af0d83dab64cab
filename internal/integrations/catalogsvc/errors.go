package catalogsvc

import "errors"

var (
	// ErrServicioNotFound is returned when the service id does not exist.
	ErrServicioNotFound = errors.New("catalogsvc: servicio not found")

	// ErrComunaNotFound is returned when the comuna id does not exist.
	ErrComunaNotFound = errors.New("catalogsvc: comuna not found")

	// ErrRegionNotFound is returned when the region id does not exist.
	ErrRegionNotFound = errors.New("catalogsvc: region not found")

	// ErrInvalidResponse is returned when the catalog service answers
	// with an unexpected payload or status code.
	ErrInvalidResponse = errors.New("catalogsvc: invalid response")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("catalogsvc: internal error")
)
