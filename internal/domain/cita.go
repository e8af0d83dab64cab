package domain

import (
	"encoding/json"
	"time"

	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// DatosDueno holds the owner's contact data and home address.
type DatosDueno struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion"`
}

// datosDuenoLegacy mirrors DatosDueno with the accented spellings older
// records carry. Normalization happens once, here, at the decode boundary.
type datosDuenoLegacy struct {
	Nombre       string `json:"nombre"`
	Telefono     string `json:"telefono"`
	TelefonoAlt  string `json:"teléfono"`
	Email        string `json:"email"`
	Direccion    string `json:"direccion"`
	DireccionAlt string `json:"dirección"`
}

// UnmarshalJSON accepts both canonical and legacy accented field names.
func (d *DatosDueno) UnmarshalJSON(data []byte) error {
	var legacy datosDuenoLegacy
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}

	d.Nombre = legacy.Nombre
	d.Email = legacy.Email
	d.Telefono = legacy.Telefono
	if d.Telefono == "" {
		d.Telefono = legacy.TelefonoAlt
	}
	d.Direccion = legacy.Direccion
	if d.Direccion == "" {
		d.Direccion = legacy.DireccionAlt
	}
	return nil
}

// LocationData pins the appointment to a place, a time and a veterinarian.
type LocationData struct {
	RegionID             string           `json:"regionId"`
	RegionNombre         string           `json:"regionNombre"`
	ComunaID             string           `json:"comunaId"`
	ComunaNombre         string           `json:"comunaNombre"`
	Fecha                types.DateString `json:"fecha"`
	Hora                 types.TimeString `json:"hora"`
	Veterinario          VeterinarioRef   `json:"veterinario"`
	CostoAdicionalComuna *types.FlexFloat `json:"costoAdicionalComuna,omitempty"`
}

// CitaServicio is a service line item attached to a pet. Precio is the
// amount actually charged to the owner, resolved from the catalog's
// promotional rule at the moment the service was added; PrecioVet is the
// payout to the attending veterinarian for the line.
type CitaServicio struct {
	ID        string           `json:"id"`
	Nombre    string           `json:"nombre"`
	Precio    types.FlexFloat  `json:"precio"`
	PrecioVet *types.FlexFloat `json:"precio_vet,omitempty"`
}

// Mascota is a pet within an appointment with its assigned services.
type Mascota struct {
	ID        string         `json:"id"`
	Nombre    string         `json:"nombre"`
	Especie   string         `json:"especie"`
	Servicios []CitaServicio `json:"servicios"`
}

// Cita is a home-visit appointment.
//
// MontoTotal is advisory (recomputed on read) while Finalizada is false;
// after finalization it is the authoritative frozen value.
type Cita struct {
	ID            string
	SlotID        string
	DatosDueno    DatosDueno
	LocationData  LocationData
	Mascotas      []Mascota
	Estado        bool
	Finalizada    bool
	MontoTotal    float64
	PrecioBase    float64
	PrecioBaseVet float64 // base payout to the veterinarian for the visit

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CitaFilter narrows appointment listings. Zero-value fields are ignored.
type CitaFilter struct {
	VeterinarioID *string
	Finalizada    *bool
	Estado        *bool
}
