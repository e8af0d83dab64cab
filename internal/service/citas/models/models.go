package models

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// CitaResponse is the outward representation of an appointment. Field
// names follow the persisted record shapes (on-disk contract).
type CitaResponse struct {
	ID           string              `json:"id"`
	SlotID       string              `json:"slotId"`
	DatosDueno   domain.DatosDueno   `json:"datosDueno"`
	LocationData domain.LocationData `json:"locationData"`
	Mascotas     []domain.Mascota    `json:"mascotas"`
	Estado       bool                `json:"estado"`
	Finalizada   bool                `json:"finalizada"`

	// MontoTotal is recomputed on read while the appointment is open and
	// frozen once finalized. MontoTotalVet is always computed on read.
	MontoTotal    float64 `json:"montoTotal"`
	MontoTotalVet float64 `json:"montoTotalVet"`

	PrecioBase    float64 `json:"precio_base"`
	PrecioBaseVet float64 `json:"precio_base_vet"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CitaListResponse is an appointment listing.
type CitaListResponse struct {
	Citas []CitaResponse `json:"citas"`
	Total int            `json:"total"`
}

// ListCitasRequest narrows an appointment listing.
type ListCitasRequest struct {
	VeterinarioID *string
	Finalizada    *bool
}

// FromDomainCita converts a domain appointment into its response shape,
// recomputing the advisory total for open appointments.
func FromDomainCita(c *domain.Cita) CitaResponse {
	montoTotal := c.MontoTotal
	if !c.Finalizada {
		montoTotal = domain.CalculateTotalAmount(c.Mascotas, c.LocationData, c.PrecioBase)
	}

	return CitaResponse{
		ID:            c.ID,
		SlotID:        c.SlotID,
		DatosDueno:    c.DatosDueno,
		LocationData:  c.LocationData,
		Mascotas:      c.Mascotas,
		Estado:        c.Estado,
		Finalizada:    c.Finalizada,
		MontoTotal:    montoTotal,
		MontoTotalVet: domain.CalculateTotalAmountVet(c.Mascotas),
		PrecioBase:    c.PrecioBase,
		PrecioBaseVet: c.PrecioBaseVet,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCitaList converts a domain list into a listing response.
func FromDomainCitaList(citas []*domain.Cita) *CitaListResponse {
	result := make([]CitaResponse, len(citas))
	for i, c := range citas {
		result[i] = FromDomainCita(c)
	}
	return &CitaListResponse{Citas: result, Total: len(result)}
}
