package slot

import "errors"

var (
	// ErrSlotNotFound is returned when the slot record does not exist.
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotNotAvailable is returned when a reservation hits a slot
	// that is no longer available.
	ErrSlotNotAvailable = errors.New("slot.repository: slot not available")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("slot.repository: failed to scan row")

	// ErrEncodeComunas is returned when the comuna batch cannot be
	// encoded to or decoded from its JSON column.
	ErrEncodeComunas = errors.New("slot.repository: failed to encode comunas")
)
