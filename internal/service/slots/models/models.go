package models

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// ComunaValor is a comuna with its home-visit surcharge.
type ComunaValor struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Valor  float64 `json:"valor"`
}

// ToDomain converts the payload into the domain representation.
func (c ComunaValor) ToDomain() domain.SlotComuna {
	return domain.SlotComuna{ID: c.ID, Nombre: c.Nombre, Valor: c.Valor}
}

// VeterinarioResponse identifies the slot's veterinarian.
type VeterinarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// SlotResponse is the outward representation of one slot record.
type SlotResponse struct {
	ID          string              `json:"id"`
	Fecha       string              `json:"fecha"`
	Hora        string              `json:"hora"`
	Veterinario VeterinarioResponse `json:"veterinario"`
	Comunas     []ComunaValor       `json:"id_comuna"`
	ComunaIDs   []string            `json:"comunaIdsFlat"`
	Disponible  bool                `json:"disponible"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

// SlotListResponse is a slot listing.
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// UpdateAvailabilityRequest is an admin bulk block/unblock over a
// selected id-set.
type UpdateAvailabilityRequest struct {
	SlotIDs    []string `json:"slotIds"`
	Disponible bool     `json:"disponible"`
}

// UpdateComunasRequest replaces the comuna surcharge list of one slot.
type UpdateComunasRequest struct {
	Comunas []ComunaValor `json:"comunas"`
}

// ToDomain converts the request comunas into domain values.
func (r *UpdateComunasRequest) ToDomain() []domain.SlotComuna {
	comunas := make([]domain.SlotComuna, len(r.Comunas))
	for i, c := range r.Comunas {
		comunas[i] = c.ToDomain()
	}
	return comunas
}

// FromDomainSlot converts a domain slot into its response shape.
func FromDomainSlot(s *domain.TimeSlot) SlotResponse {
	comunas := make([]ComunaValor, len(s.Comunas))
	for i, c := range s.Comunas {
		comunas[i] = ComunaValor{ID: c.ID, Nombre: c.Nombre, Valor: c.Valor}
	}

	return SlotResponse{
		ID:          s.ID,
		Fecha:       s.Fecha.String(),
		Hora:        s.Hora.String(),
		Veterinario: VeterinarioResponse{ID: s.Veterinario.ID, Nombre: s.Veterinario.Nombre},
		Comunas:     comunas,
		ComunaIDs:   s.ComunaIDs,
		Disponible:  s.Disponible,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotList converts a domain slot list into a listing response.
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	result := make([]SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = FromDomainSlot(s)
	}
	return &SlotListResponse{Slots: result, Total: len(result)}
}
