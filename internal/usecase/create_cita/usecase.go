package create_cita

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	slotRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/slot"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/catalogsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// UseCase books a home visit: it reserves the chosen slot and creates the
// appointment in one transaction.
type UseCase struct {
	slotRepo      SlotRepository
	citaRepo      CitaRepository
	catalogClient CatalogClient
	txManager     TransactionManager
	precioBase    float64
	precioBaseVet float64
	logger        Logger
}

func NewUseCase(
	slotRepo SlotRepository,
	citaRepo CitaRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	precioBase float64,
	precioBaseVet float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		citaRepo:      citaRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		precioBase:    precioBase,
		precioBaseVet: precioBaseVet,
		logger:        logger,
	}
}

// Execute creates the appointment. The slot reservation is the single
// guarded test-and-set of the system: the slot row is locked FOR UPDATE,
// checked, and flipped inside the same serializable transaction as the
// appointment insert, so at most one concurrent booking wins.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCita: slot=%s, comuna=%s, mascotas=%d", req.SlotID, req.ComunaID, len(req.Mascotas))

	// 1. Input validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCita: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve region and comuna names from the catalog.
	region, err := uc.catalogClient.GetRegion(ctx, req.RegionID)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrRegionNotFound) {
			uc.logger.Warn("CreateCita: region=%s not found", req.RegionID)
			return nil, ErrRegionNotFound
		}
		uc.logger.Error("CreateCita: failed to get region=%s: %v", req.RegionID, err)
		return nil, fmt.Errorf("%w: failed to get region: %v", ErrInternal, err)
	}

	comuna, err := uc.catalogClient.GetComuna(ctx, req.ComunaID)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrComunaNotFound) {
			uc.logger.Warn("CreateCita: comuna=%s not found", req.ComunaID)
			return nil, ErrComunaNotFound
		}
		uc.logger.Error("CreateCita: failed to get comuna=%s: %v", req.ComunaID, err)
		return nil, fmt.Errorf("%w: failed to get comuna: %v", ErrInternal, err)
	}

	// 3. Resolve every service line. The owner price is resolved from
	// the promotional rule HERE, at attach time, and frozen on the line
	// item; it is not a live reference into the catalog.
	mascotas, err := uc.resolveMascotas(ctx, req.Mascotas)
	if err != nil {
		return nil, err
	}

	var result *domain.Cita

	// 4. Reserve the slot and create the appointment atomically.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateCita: slot=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateCita: failed to get slot=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.Disponible {
			uc.logger.Warn("CreateCita: slot=%s already taken", req.SlotID)
			return ErrSlotNotAvailable
		}

		surcharge, ok := slot.SurchargeFor(req.ComunaID)
		if !ok {
			uc.logger.Warn("CreateCita: comuna=%s not in slot=%s batch", req.ComunaID, req.SlotID)
			return ErrComunaNotInSlot
		}

		if err := uc.slotRepo.Reserve(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateCita: lost reservation race for slot=%s", req.SlotID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateCita: failed to reserve slot=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		costoComuna := types.FlexFloat(surcharge)
		cita := &domain.Cita{
			ID:         uuid.NewString(),
			SlotID:     slot.ID,
			DatosDueno: req.DatosDueno,
			LocationData: domain.LocationData{
				RegionID:             region.ID,
				RegionNombre:         region.Nombre,
				ComunaID:             comuna.ID,
				ComunaNombre:         comuna.Nombre,
				Fecha:                slot.Fecha,
				Hora:                 slot.Hora,
				Veterinario:          slot.Veterinario,
				CostoAdicionalComuna: &costoComuna,
			},
			Mascotas:      mascotas,
			Estado:        true,
			Finalizada:    false,
			MontoTotal:    0,
			PrecioBase:    uc.precioBase,
			PrecioBaseVet: uc.precioBaseVet,
		}

		result, err = uc.citaRepo.Create(txCtx, cita)
		if err != nil {
			uc.logger.Error("CreateCita: failed to create cita: %v", err)
			return fmt.Errorf("%w: failed to create cita: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateCita: created cita id=%s on slot=%s", result.ID, result.SlotID)

	return &Response{
		ID:            result.ID,
		SlotID:        result.SlotID,
		DatosDueno:    result.DatosDueno,
		LocationData:  result.LocationData,
		Mascotas:      result.Mascotas,
		Estado:        result.Estado,
		Finalizada:    result.Finalizada,
		MontoTotal:    domain.CalculateTotalAmount(result.Mascotas, result.LocationData, result.PrecioBase),
		MontoTotalVet: domain.CalculateTotalAmountVet(result.Mascotas),
		PrecioBase:    result.PrecioBase,
		PrecioBaseVet: result.PrecioBaseVet,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// resolveMascotas turns the requested pets into domain pets with frozen
// service line items.
func (uc *UseCase) resolveMascotas(ctx context.Context, inputs []MascotaInput) ([]domain.Mascota, error) {
	mascotas := make([]domain.Mascota, 0, len(inputs))

	for _, input := range inputs {
		servicios := make([]domain.CitaServicio, 0, len(input.ServicioIDs))

		for _, servicioID := range input.ServicioIDs {
			servicio, err := uc.catalogClient.GetServicio(ctx, servicioID)
			if err != nil {
				if errors.Is(err, catalogsvc.ErrServicioNotFound) {
					uc.logger.Warn("CreateCita: servicio=%s not found", servicioID)
					return nil, ErrServicioNotFound
				}
				uc.logger.Error("CreateCita: failed to get servicio=%s: %v", servicioID, err)
				return nil, fmt.Errorf("%w: failed to get servicio: %v", ErrInternal, err)
			}

			if !servicio.AvailableFor(input.Especie) {
				uc.logger.Warn("CreateCita: servicio=%s not available for especie=%s", servicioID, input.Especie)
				return nil, ErrServicioNoDisponible
			}

			line := domain.CitaServicio{
				ID:     servicio.ID,
				Nombre: servicio.Nombre,
				Precio: types.FlexFloat(servicio.EffectivePrice()),
			}
			if servicio.PrecioVet != nil {
				payout := types.FlexFloat(*servicio.PrecioVet)
				line.PrecioVet = &payout
			}
			servicios = append(servicios, line)
		}

		mascotas = append(mascotas, domain.Mascota{
			ID:        uuid.NewString(),
			Nombre:    input.Nombre,
			Especie:   input.Especie,
			Servicios: servicios,
		})
	}

	return mascotas, nil
}
