package finalize_cita

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
)

// Request asks to finalize one appointment on behalf of the caller.
type Request struct {
	Caller *identsvc.Usuario
	CitaID string
}

// Response is the finalized appointment with its frozen owner total and
// the veterinarian payout computed from the same line items.
type Response struct {
	ID           string
	SlotID       string
	DatosDueno   domain.DatosDueno
	LocationData domain.LocationData
	Mascotas     []domain.Mascota
	Estado       bool
	Finalizada   bool

	// MontoTotal is frozen from this point on.
	MontoTotal    float64
	MontoTotalVet float64

	Servicios string

	PrecioBase    float64
	PrecioBaseVet float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
