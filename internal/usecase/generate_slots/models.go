package generate_slots

import (
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// ComunaValor is one comuna of the generation batch with its surcharge.
type ComunaValor struct {
	ID     string
	Nombre string
	Valor  float64
}

// Request describes a bulk generation: one slot record per eligible
// day/hour for the target veterinarian, each carrying the full comuna
// batch.
type Request struct {
	Caller              *identsvc.Usuario
	TargetVeterinarioID string
	Comunas             []ComunaValor
	StartDate           types.DateString
	EndDate             types.DateString
}

// Response reports how many slot records were created.
type Response struct {
	Generated int
	Message   string
}
