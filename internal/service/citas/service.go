package citas

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	citaRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/cita"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas/models"
)

// Service covers appointment reads for the staff console.
type Service struct {
	citaRepo CitaRepository
	logger   Logger
}

func NewService(citaRepo CitaRepository, logger Logger) *Service {
	return &Service{
		citaRepo: citaRepo,
		logger:   logger,
	}
}

// GetByID returns one appointment. Admins see any appointment; a vet only
// those where it is the assigned veterinarian.
func (s *Service) GetByID(ctx context.Context, user *identsvc.Usuario, id string) (*models.CitaResponse, error) {
	s.logger.Info("GetByID: fetching cita id=%s for user=%s", id, user.ID)

	cita, err := s.citaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, citaRepo.ErrCitaNotFound) {
			s.logger.Warn("GetByID: cita id=%s not found", id)
			return nil, ErrCitaNotFound
		}
		s.logger.Error("GetByID: repository error for cita id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !user.CanActForVet(cita.LocationData.Veterinario.ID) {
		s.logger.Warn("GetByID: access denied for user=%s to cita id=%s", user.ID, id)
		return nil, ErrAccessDenied
	}

	response := models.FromDomainCita(cita)
	return &response, nil
}

// List returns appointments for the staff console. A vet account is
// always pinned to its own appointments regardless of the requested
// filter; admins may filter by any veterinarian.
func (s *Service) List(ctx context.Context, user *identsvc.Usuario, req *models.ListCitasRequest) (*models.CitaListResponse, error) {
	filter := domain.CitaFilter{
		VeterinarioID: req.VeterinarioID,
		Finalizada:    req.Finalizada,
	}

	if !user.IsAdmin() {
		filter.VeterinarioID = &user.ID
	}

	s.logger.Info("List: user=%s, vet=%v, finalizada=%v", user.ID, filter.VeterinarioID, filter.Finalizada)

	citas, err := s.citaRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d citas", len(citas))
	return models.FromDomainCitaList(citas), nil
}
