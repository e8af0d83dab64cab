package create_cita

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// MascotaInput is one pet of the booking request with the catalog ids of
// the requested services.
type MascotaInput struct {
	Nombre      string
	Especie     string // perro | gato
	ServicioIDs []string
}

// Request describes a new home-visit booking against one slot.
type Request struct {
	SlotID     string
	RegionID   string
	ComunaID   string
	DatosDueno domain.DatosDueno
	Mascotas   []MascotaInput
}

// Response is the created appointment together with its advisory totals.
type Response struct {
	ID           string
	SlotID       string
	DatosDueno   domain.DatosDueno
	LocationData domain.LocationData
	Mascotas     []domain.Mascota
	Estado       bool
	Finalizada   bool

	// Advisory totals, recomputed until finalization freezes MontoTotal.
	MontoTotal    float64
	MontoTotalVet float64

	PrecioBase    float64
	PrecioBaseVet float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
