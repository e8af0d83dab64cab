package finalize_cita

import (
	finalizeCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/finalize_cita"
)

// FinalizeCitaResponse is the settlement summary handed to the
// veterinarian once the visit is closed.
type FinalizeCitaResponse struct {
	ID         string `json:"id"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	VetName    string `json:"vetName"`

	// Servicios is the de-duplicated "<nombre>: $<precio>" itemization,
	// one line per distinct service.
	Servicios string `json:"servicios"`

	PrecioBase   float64  `json:"precioBase"`
	PrecioComuna *float64 `json:"precioComuna,omitempty"`

	TotalAmount    float64 `json:"totalAmount"`
	TotalAmountVet float64 `json:"totalAmountVet"`

	Finalizada bool `json:"finalizada"`
}

// FromUseCaseResponse converts the usecase response into the summary
// shape.
func FromUseCaseResponse(resp *finalizeCita.Response) *FinalizeCitaResponse {
	out := &FinalizeCitaResponse{
		ID:             resp.ID,
		OwnerName:      resp.DatosDueno.Nombre,
		OwnerPhone:     resp.DatosDueno.Telefono,
		VetName:        resp.LocationData.Veterinario.Nombre,
		Servicios:      resp.Servicios,
		PrecioBase:     resp.PrecioBase,
		TotalAmount:    resp.MontoTotal,
		TotalAmountVet: resp.MontoTotalVet,
		Finalizada:     resp.Finalizada,
	}

	if resp.LocationData.CostoAdicionalComuna != nil {
		precioComuna := resp.LocationData.CostoAdicionalComuna.Float64()
		out.PrecioComuna = &precioComuna
	}

	return out
}
