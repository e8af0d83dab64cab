package generate_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// validateRequest checks the generation input before any read or write.
func validateRequest(req *Request) error {
	if req.Caller == nil {
		return fmt.Errorf("%w: caller is required", ErrInvalidInput)
	}

	if req.TargetVeterinarioID == "" {
		return fmt.Errorf("%w: target veterinarian is required", ErrInvalidInput)
	}

	if len(req.Comunas) == 0 {
		return fmt.Errorf("%w: at least one comuna is required", ErrInvalidInput)
	}
	for _, c := range req.Comunas {
		if c.ID == "" {
			return fmt.Errorf("%w: comuna id is required", ErrInvalidInput)
		}
		if c.Valor < 0 {
			return fmt.Errorf("%w: comuna valor must be non-negative", ErrInvalidInput)
		}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	return nil
}

// buildSlots materializes the batch: for every Monday–Saturday day in
// [start, end], one record per hour from 09:00 to 20:00 inclusive, with
// the full comuna batch on each record.
func buildSlots(vet domain.VeterinarioRef, comunas []ComunaValor, start, end types.DateString) ([]*domain.TimeSlot, error) {
	startDay, err := start.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endDay, err := end.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	batch := make([]domain.SlotComuna, len(comunas))
	comunaIDs := make([]string, len(comunas))
	for i, c := range comunas {
		batch[i] = domain.SlotComuna{ID: c.ID, Nombre: c.Nombre, Valor: c.Valor}
		comunaIDs[i] = c.ID
	}

	slots := make([]*domain.TimeSlot, 0)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}

		fecha := types.NewDateString(day)
		for hour := domain.GenerationStartHour; hour <= domain.GenerationEndHour; hour++ {
			slots = append(slots, &domain.TimeSlot{
				ID:          uuid.NewString(),
				Fecha:       fecha,
				Hora:        types.TimeString(fmt.Sprintf("%02d:00", hour)),
				Veterinario: vet,
				Comunas:     batch,
				ComunaIDs:   comunaIDs,
				Disponible:  true,
			})
		}
	}

	return slots, nil
}
