package domain

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// VeterinarioRef identifies the veterinarian a slot or appointment belongs to.
type VeterinarioRef struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// SlotComuna is one comuna of a generation batch together with its
// home-visit surcharge.
type SlotComuna struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Valor  float64 `json:"valor"`
}

// TimeSlot is one availability record: veterinarian × date × hour ×
// comuna-batch. One logical time-slot may be stored as several records
// across generation batches with different comuna sets; availability
// operations fan out over the SlotKey.
type TimeSlot struct {
	ID          string
	Fecha       types.DateString
	Hora        types.TimeString
	Veterinario VeterinarioRef
	Comunas     []SlotComuna // exact set passed at generation time
	ComunaIDs   []string     // flattened projection of Comunas, kept for containment queries
	Disponible  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the logical slot identity shared by every record of the
// same veterinarian/date/hour.
func (s *TimeSlot) Key() SlotKey {
	return SlotKey{
		VeterinarioID: s.Veterinario.ID,
		Fecha:         s.Fecha,
		Hora:          s.Hora,
	}
}

// SurchargeFor returns the surcharge for the given comuna, if the slot
// was generated for it.
func (s *TimeSlot) SurchargeFor(comunaID string) (float64, bool) {
	for _, c := range s.Comunas {
		if c.ID == comunaID {
			return c.Valor, true
		}
	}
	return 0, false
}

// SlotKey identifies a logical time-slot regardless of how many stored
// records represent it.
type SlotKey struct {
	VeterinarioID string
	Fecha         types.DateString
	Hora          types.TimeString
}

// SlotFilter narrows slot listings. Zero-value fields are ignored.
// Date bounds are inclusive and compared lexically (zero-padded strings).
type SlotFilter struct {
	ComunaIDs     []string          // match slots whose batch intersects any of these
	StartDate     *types.DateString // fecha >= StartDate
	EndDate       *types.DateString // fecha <= EndDate
	VeterinarioID *string
	Disponible    *bool
}
