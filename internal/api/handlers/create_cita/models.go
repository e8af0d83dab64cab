package create_cita

import (
	"time"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	createCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/create_cita"
)

// MascotaRequest is one pet of the booking with the catalog ids of the
// requested services.
type MascotaRequest struct {
	Nombre      string   `json:"nombre"`
	Especie     string   `json:"especie"`
	ServicioIDs []string `json:"servicioIds"`
}

// CreateCitaRequest HTTP request model. DatosDueno tolerates the legacy
// accented keys of older clients.
type CreateCitaRequest struct {
	SlotID     string            `json:"slotId"`
	RegionID   string            `json:"regionId"`
	ComunaID   string            `json:"comunaId"`
	DatosDueno domain.DatosDueno `json:"datosDueno"`
	Mascotas   []MascotaRequest  `json:"mascotas"`
}

// CitaResponse HTTP response model
type CitaResponse struct {
	ID           string              `json:"id"`
	SlotID       string              `json:"slotId"`
	DatosDueno   domain.DatosDueno   `json:"datosDueno"`
	LocationData domain.LocationData `json:"locationData"`
	Mascotas     []domain.Mascota    `json:"mascotas"`
	Estado       bool                `json:"estado"`
	Finalizada   bool                `json:"finalizada"`

	MontoTotal    float64 `json:"montoTotal"`
	MontoTotalVet float64 `json:"montoTotalVet"`

	PrecioBase    float64 `json:"precio_base"`
	PrecioBaseVet float64 `json:"precio_base_vet"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateCitaRequest) ToUseCaseRequest() *createCita.Request {
	mascotas := make([]createCita.MascotaInput, len(r.Mascotas))
	for i, m := range r.Mascotas {
		mascotas[i] = createCita.MascotaInput{
			Nombre:      m.Nombre,
			Especie:     m.Especie,
			ServicioIDs: m.ServicioIDs,
		}
	}

	return &createCita.Request{
		SlotID:     r.SlotID,
		RegionID:   r.RegionID,
		ComunaID:   r.ComunaID,
		DatosDueno: r.DatosDueno,
		Mascotas:   mascotas,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP shape.
func FromUseCaseResponse(resp *createCita.Response) *CitaResponse {
	return &CitaResponse{
		ID:            resp.ID,
		SlotID:        resp.SlotID,
		DatosDueno:    resp.DatosDueno,
		LocationData:  resp.LocationData,
		Mascotas:      resp.Mascotas,
		Estado:        resp.Estado,
		Finalizada:    resp.Finalizada,
		MontoTotal:    resp.MontoTotal,
		MontoTotalVet: resp.MontoTotalVet,
		PrecioBase:    resp.PrecioBase,
		PrecioBaseVet: resp.PrecioBaseVet,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
