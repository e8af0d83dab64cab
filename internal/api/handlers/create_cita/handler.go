package create_cita

import (
	"errors"
	"net/http"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	createCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/create_cita"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud invalido"
	msgInvalidInput         = "datos de la reserva invalidos"
	msgSlotNotFound         = "horario no encontrado"
	msgSlotNotAvailable     = "el horario ya no esta disponible, elija otro"
	msgComunaNotInSlot      = "la comuna no esta cubierta por este horario"
	msgComunaNotFound       = "comuna no encontrada"
	msgRegionNotFound       = "region no encontrada"
	msgServicioNotFound     = "servicio no encontrado"
	msgServicioNoDisponible = "el servicio no esta disponible para esta especie"
)

type Handler struct {
	useCase CreateCitaUseCase
	logger  Logger
}

func NewHandler(useCase CreateCitaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/citas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCitaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /citas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createCita.ErrInvalidInput):
			h.logger.Warn("POST /citas - Invalid input: slot=%s, error=%v", req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createCita.ErrSlotNotFound):
			h.logger.Warn("POST /citas - Slot not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createCita.ErrSlotNotAvailable):
			h.logger.Warn("POST /citas - Slot not available: slot=%s", req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createCita.ErrComunaNotInSlot):
			h.logger.Warn("POST /citas - Comuna not in slot: slot=%s, comuna=%s", req.SlotID, req.ComunaID)
			handlers.RespondBadRequest(w, msgComunaNotInSlot)

		case errors.Is(err, createCita.ErrComunaNotFound):
			h.logger.Warn("POST /citas - Comuna not found: comuna=%s", req.ComunaID)
			handlers.RespondNotFound(w, msgComunaNotFound)

		case errors.Is(err, createCita.ErrRegionNotFound):
			h.logger.Warn("POST /citas - Region not found: region=%s", req.RegionID)
			handlers.RespondNotFound(w, msgRegionNotFound)

		case errors.Is(err, createCita.ErrServicioNotFound):
			h.logger.Warn("POST /citas - Servicio not found: slot=%s", req.SlotID)
			handlers.RespondNotFound(w, msgServicioNotFound)

		case errors.Is(err, createCita.ErrServicioNoDisponible):
			h.logger.Warn("POST /citas - Servicio not available for species: slot=%s", req.SlotID)
			handlers.RespondBadRequest(w, msgServicioNoDisponible)

		default:
			h.logger.Error("POST /citas - Failed to create cita: slot=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /citas - Cita created: cita=%s, slot=%s", result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
