package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation rules: home visits run on the hour, Monday through
// Saturday, from 09:00 to 20:00 inclusive. Sundays are never generated.
const (
	GenerationStartHour = 9
	GenerationEndHour   = 20
)

// SlotsPerDay is the number of slots a full generated day carries.
const SlotsPerDay = GenerationEndHour - GenerationStartHour + 1

// User roles supplied by the identity collaborator.
const (
	RoleAdmin   = "admin"
	RoleVet     = "vet"
	RoleCliente = "cliente"
)

// Pet species the service catalog distinguishes.
const (
	EspeciePerro = "perro"
	EspecieGato  = "gato"
)
