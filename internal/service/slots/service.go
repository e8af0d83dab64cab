package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	slotRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/slot"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

// Service covers slot listing and the admin availability operations.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List returns slots matching the filter, ordered by fecha then hora.
// Used both by clients picking a time and by admins auditing slots.
func (s *Service) List(ctx context.Context, filter domain.SlotFilter) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// UpdateAvailability blocks or unblocks the selected slots. The id-set is
// deduplicated to unique (veterinario, fecha, hora) keys first, and the
// flip fans out over every stored record sharing each key, because one
// logical time-slot may exist as several records across generation
// batches. Returns the number of records updated.
func (s *Service) UpdateAvailability(ctx context.Context, user *identsvc.Usuario, req *models.UpdateAvailabilityRequest) (int64, error) {
	s.logger.Info("UpdateAvailability: user=%s, slots=%d, disponible=%v", user.ID, len(req.SlotIDs), req.Disponible)

	if len(req.SlotIDs) == 0 {
		return 0, fmt.Errorf("%w: slotIds is required", ErrInvalidInput)
	}

	slots, err := s.slotRepo.GetByIDs(ctx, req.SlotIDs)
	if err != nil {
		s.logger.Error("UpdateAvailability: failed to fetch slots: %v", err)
		return 0, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		return 0, ErrSlotNotFound
	}

	// A plain vet account may only touch its own slots.
	for _, slot := range slots {
		if !user.CanActForVet(slot.Veterinario.ID) {
			s.logger.Warn("UpdateAvailability: user=%s denied for vet=%s", user.ID, slot.Veterinario.ID)
			return 0, ErrAccessDenied
		}
	}

	keys := dedupeKeys(slots)

	var updated int64
	for _, key := range keys {
		n, err := s.slotRepo.SetDisponibleByKey(ctx, key, req.Disponible)
		if err != nil {
			s.logger.Error("UpdateAvailability: failed to update key vet=%s fecha=%s hora=%s: %v",
				key.VeterinarioID, key.Fecha, key.Hora, err)
			return updated, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
		}
		updated += n
	}

	s.logger.Info("UpdateAvailability: updated %d records across %d logical slots", updated, len(keys))
	return updated, nil
}

// UpdateComunas replaces the comuna surcharge list of one slot record.
// Admin only; the availability flag is left untouched.
func (s *Service) UpdateComunas(ctx context.Context, user *identsvc.Usuario, slotID string, req *models.UpdateComunasRequest) error {
	s.logger.Info("UpdateComunas: user=%s, slot=%s, comunas=%d", user.ID, slotID, len(req.Comunas))

	if !user.IsAdmin() {
		s.logger.Warn("UpdateComunas: user=%s is not admin", user.ID)
		return ErrAccessDenied
	}

	if len(req.Comunas) == 0 {
		return fmt.Errorf("%w: comunas is required", ErrInvalidInput)
	}
	for _, c := range req.Comunas {
		if c.ID == "" {
			return fmt.Errorf("%w: comuna id is required", ErrInvalidInput)
		}
		if c.Valor < 0 {
			return fmt.Errorf("%w: comuna valor must be non-negative", ErrInvalidInput)
		}
	}

	if err := s.slotRepo.UpdateComunas(ctx, slotID, req.ToDomain()); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateComunas: slot=%s not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("UpdateComunas: repository error for slot=%s: %v", slotID, err)
		return fmt.Errorf("%w: UpdateComunas - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateComunas: slot=%s updated", slotID)
	return nil
}

// Delete removes one slot record. Admin escape hatch.
func (s *Service) Delete(ctx context.Context, user *identsvc.Usuario, slotID string) error {
	s.logger.Info("Delete: user=%s, slot=%s", user.ID, slotID)

	if !user.IsAdmin() {
		s.logger.Warn("Delete: user=%s is not admin", user.ID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot=%s not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot=%s: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot=%s removed", slotID)
	return nil
}

// dedupeKeys reduces slot records to their unique logical keys, keeping
// first-seen order, to avoid issuing redundant updates.
func dedupeKeys(slots []*domain.TimeSlot) []domain.SlotKey {
	seen := make(map[domain.SlotKey]struct{}, len(slots))
	keys := make([]domain.SlotKey, 0, len(slots))

	for _, slot := range slots {
		key := slot.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}
