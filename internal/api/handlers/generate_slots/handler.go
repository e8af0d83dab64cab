package generate_slots

import (
	"errors"
	"net/http"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	generateSlots "github.com/vetacasa/VetACasa-BookingService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud invalido"
	msgInvalidDate        = "formato de fecha invalido, se espera YYYY-MM-DD"
	msgInvalidInput       = "datos de generacion invalidos"
	msgVetNotFound        = "veterinario no encontrado"
	msgInvalidRole        = "la cuenta destino no es un veterinario"
	msgAccessDenied       = "no puede generar horarios para otro veterinario"
	msgSlotsOverlap       = "el veterinario ya tiene horarios en el rango solicitado"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /slots/generate - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /slots/generate - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /slots/generate - Invalid input: vet=%s, error=%v", req.VeterinarioID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, generateSlots.ErrVetNotFound):
			h.logger.Warn("POST /slots/generate - Vet not found: vet=%s", req.VeterinarioID)
			handlers.RespondNotFound(w, msgVetNotFound)

		case errors.Is(err, generateSlots.ErrInvalidRole):
			h.logger.Warn("POST /slots/generate - Target is not a vet: vet=%s", req.VeterinarioID)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, generateSlots.ErrAccessDenied):
			h.logger.Warn("POST /slots/generate - Access denied: caller=%s, vet=%s", caller.ID, req.VeterinarioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, generateSlots.ErrSlotsOverlap):
			h.logger.Warn("POST /slots/generate - Overlapping range: vet=%s, start=%s, end=%s",
				req.VeterinarioID, req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgSlotsOverlap)

		default:
			h.logger.Error("POST /slots/generate - Failed to generate slots: vet=%s, error=%v",
				req.VeterinarioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate - Generated %d slots: vet=%s, start=%s, end=%s",
		result.Generated, req.VeterinarioID, req.StartDate, req.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
