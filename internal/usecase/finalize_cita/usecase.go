package finalize_cita

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	citaRepo "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/cita"
)

// UseCase finalizes an appointment: the owner total is computed from the
// frozen line items and written once, after which the record is immutable.
type UseCase struct {
	citaRepo  CitaRepository
	txManager TransactionManager
	logger    Logger
}

func NewUseCase(citaRepo CitaRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		citaRepo:  citaRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute runs the check-and-set inside one serializable transaction: the
// row is locked, re-checked for an earlier finalization, and only then
// flipped. A second concurrent finalize fails instead of rewriting the
// frozen total.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeCita: cita=%s, caller=%s", req.CitaID, req.Caller.ID)

	if req.CitaID == "" {
		return nil, ErrCitaNotFound
	}

	var result *domain.Cita

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		cita, err := uc.citaRepo.GetByID(txCtx, req.CitaID)
		if err != nil {
			if errors.Is(err, citaRepo.ErrCitaNotFound) {
				uc.logger.Warn("FinalizeCita: cita=%s not found", req.CitaID)
				return ErrCitaNotFound
			}
			uc.logger.Error("FinalizeCita: failed to get cita=%s: %v", req.CitaID, err)
			return fmt.Errorf("%w: failed to get cita: %v", ErrInternal, err)
		}

		if !req.Caller.CanActForVet(cita.LocationData.Veterinario.ID) {
			uc.logger.Warn("FinalizeCita: caller=%s may not finalize cita=%s of vet=%s",
				req.Caller.ID, cita.ID, cita.LocationData.Veterinario.ID)
			return ErrAccessDenied
		}

		if cita.Finalizada {
			uc.logger.Warn("FinalizeCita: cita=%s already finalizada", req.CitaID)
			return ErrAlreadyFinalizada
		}

		montoTotal := domain.CalculateTotalAmount(cita.Mascotas, cita.LocationData, cita.PrecioBase)

		if err := uc.citaRepo.Finalize(txCtx, cita.ID, montoTotal); err != nil {
			if errors.Is(err, citaRepo.ErrAlreadyFinalizada) {
				uc.logger.Warn("FinalizeCita: lost finalization race for cita=%s", req.CitaID)
				return ErrAlreadyFinalizada
			}
			uc.logger.Error("FinalizeCita: failed to finalize cita=%s: %v", req.CitaID, err)
			return fmt.Errorf("%w: failed to finalize cita: %v", ErrInternal, err)
		}

		cita.Finalizada = true
		cita.MontoTotal = montoTotal
		result = cita
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FinalizeCita: cita=%s frozen at monto_total=%s",
		result.ID, domain.FormatAmount(result.MontoTotal))

	return &Response{
		ID:            result.ID,
		SlotID:        result.SlotID,
		DatosDueno:    result.DatosDueno,
		LocationData:  result.LocationData,
		Mascotas:      result.Mascotas,
		Estado:        result.Estado,
		Finalizada:    result.Finalizada,
		MontoTotal:    result.MontoTotal,
		MontoTotalVet: domain.CalculateTotalAmountVet(result.Mascotas),
		Servicios:     domain.ItemizedServices(result.Mascotas),
		PrecioBase:    result.PrecioBase,
		PrecioBaseVet: result.PrecioBaseVet,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
