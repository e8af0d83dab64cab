package catalogsvc

import "github.com/vetacasa/VetACasa-BookingService/internal/domain"

// DisponiblePara marks which species a catalog service applies to.
type DisponiblePara struct {
	Perro bool `json:"perro"`
	Gato  bool `json:"gato"`
}

// Servicio is a catalog entry as served by the catalog service. The core
// never mutates catalog data, it only resolves prices from it.
type Servicio struct {
	ID             string         `json:"id"`
	Nombre         string         `json:"nombre"`
	Descripcion    string         `json:"descripcion"`
	DisponiblePara DisponiblePara `json:"disponible_para"`
	Precio         float64        `json:"precio"`
	EnPromocion    bool           `json:"en_promocion"`
	NewPrice       *float64       `json:"new_price,omitempty"`
	PrecioVet      *float64       `json:"precio_vet,omitempty"`
	PrecioItem     *float64       `json:"precio_item,omitempty"`
}

// EffectivePrice resolves the owner-facing price at the moment the
// service is attached to a pet: the promotional price wins only when the
// promotion flag is set AND a promotional price is defined.
func (s *Servicio) EffectivePrice() float64 {
	if s.EnPromocion && s.NewPrice != nil {
		return *s.NewPrice
	}
	return s.Precio
}

// AvailableFor reports whether the service can be assigned to a pet of
// the given species.
func (s *Servicio) AvailableFor(especie string) bool {
	switch especie {
	case domain.EspeciePerro:
		return s.DisponiblePara.Perro
	case domain.EspecieGato:
		return s.DisponiblePara.Gato
	default:
		return false
	}
}

// Comuna is a catalog comuna entry.
type Comuna struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	RegionID string `json:"regionId"`
}

// Region is a catalog region entry.
type Region struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Logger is the narrow logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
