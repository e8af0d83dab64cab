package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
)

// UseCase creates availability slots in bulk for one veterinarian.
type UseCase struct {
	slotRepo    SlotRepository
	identClient IdentityClient
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	slotRepo SlotRepository,
	identClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		identClient: identClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute generates the slot batch. The overlap guard and the batch
// insert run inside one serializable transaction so two concurrent calls
// for the same veterinarian and range cannot both pass the check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: target=%s, comunas=%d, range=%s..%s",
		req.TargetVeterinarioID, len(req.Comunas), req.StartDate, req.EndDate)

	// 1. Input validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Caller authorization: admins generate for anyone, a vet only
	// for itself.
	if !req.Caller.CanActForVet(req.TargetVeterinarioID) {
		uc.logger.Warn("GenerateSlots: caller=%s denied for target=%s", req.Caller.ID, req.TargetVeterinarioID)
		return nil, ErrAccessDenied
	}

	// 3. The target must resolve to a vet or admin account.
	target, err := uc.identClient.GetUser(ctx, req.TargetVeterinarioID)
	if err != nil {
		if errors.Is(err, identsvc.ErrUserNotFound) {
			uc.logger.Warn("GenerateSlots: target=%s not found", req.TargetVeterinarioID)
			return nil, ErrVetNotFound
		}
		uc.logger.Error("GenerateSlots: failed to resolve target=%s: %v", req.TargetVeterinarioID, err)
		return nil, fmt.Errorf("%w: failed to resolve target: %v", ErrInternal, err)
	}
	if !target.IsStaff() {
		uc.logger.Warn("GenerateSlots: target=%s has role=%s", target.ID, target.Role)
		return nil, ErrInvalidRole
	}

	// 4. Materialize the batch up front; only the guard and the insert
	// need the transaction.
	vet := domain.VeterinarioRef{ID: target.ID, Nombre: target.Nombre}
	slots, err := buildSlots(vet, req.Comunas, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var generated int

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.slotRepo.CountByVeterinarioInRange(txCtx, target.ID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("GenerateSlots: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if existing > 0 {
			uc.logger.Warn("GenerateSlots: %d existing slots for vet=%s in range %s..%s",
				existing, target.ID, req.StartDate, req.EndDate)
			return ErrSlotsOverlap
		}

		generated, err = uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			uc.logger.Error("GenerateSlots: batch insert failed: %v", err)
			return fmt.Errorf("%w: batch insert failed: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: generated %d slots for vet=%s", generated, target.ID)

	return &Response{
		Generated: generated,
		Message: fmt.Sprintf("se generaron %d horarios para %s entre %s y %s",
			generated, target.Nombre, req.StartDate, req.EndDate),
	}, nil
}
