package generate_slots

import (
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	generateSlots "github.com/vetacasa/VetACasa-BookingService/internal/usecase/generate_slots"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// ComunaValor is one comuna of the generation batch with its surcharge.
type ComunaValor struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Valor  float64 `json:"valor"`
}

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	VeterinarioID string        `json:"veterinarioId"`
	Comunas       []ComunaValor `json:"comunas"`
	StartDate     string        `json:"startDate"` // "2026-09-01"
	EndDate       string        `json:"endDate"`   // "2026-09-30"
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Generated int    `json:"generated"`
	Message   string `json:"message"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing both dates.
func (r *GenerateSlotsRequest) ToUseCaseRequest(caller *identsvc.Usuario) (*generateSlots.Request, error) {
	startDate, err := types.NewDateStringFromString(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.NewDateStringFromString(r.EndDate)
	if err != nil {
		return nil, err
	}

	comunas := make([]generateSlots.ComunaValor, len(r.Comunas))
	for i, c := range r.Comunas {
		comunas[i] = generateSlots.ComunaValor{ID: c.ID, Nombre: c.Nombre, Valor: c.Valor}
	}

	return &generateSlots.Request{
		Caller:              caller,
		TargetVeterinarioID: r.VeterinarioID,
		Comunas:             comunas,
		StartDate:           startDate,
		EndDate:             endDate,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP shape.
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		Generated: resp.Generated,
		Message:   resp.Message,
	}
}
