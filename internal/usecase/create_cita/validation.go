package create_cita

import (
	"fmt"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// validateRequest checks the booking input before any catalog lookup or
// write.
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}
	if req.RegionID == "" || req.ComunaID == "" {
		return fmt.Errorf("%w: regionId and comunaId are required", ErrInvalidInput)
	}

	if req.DatosDueno.Nombre == "" {
		return fmt.Errorf("%w: owner name is required", ErrInvalidInput)
	}
	if req.DatosDueno.Telefono == "" {
		return fmt.Errorf("%w: owner phone is required", ErrInvalidInput)
	}
	if req.DatosDueno.Direccion == "" {
		return fmt.Errorf("%w: owner address is required", ErrInvalidInput)
	}

	if len(req.Mascotas) == 0 {
		return fmt.Errorf("%w: at least one mascota is required", ErrInvalidInput)
	}
	for _, m := range req.Mascotas {
		if m.Nombre == "" {
			return fmt.Errorf("%w: mascota name is required", ErrInvalidInput)
		}
		if m.Especie != domain.EspeciePerro && m.Especie != domain.EspecieGato {
			return fmt.Errorf("%w: unknown especie %q", ErrInvalidInput, m.Especie)
		}
	}

	return nil
}
