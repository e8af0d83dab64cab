package update_slot_availability

import (
	"errors"
	"net/http"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud invalido"
	msgInvalidInput       = "seleccion de horarios invalida"
	msgSlotNotFound       = "horario no encontrado"
	msgAccessDenied       = "no puede modificar horarios de otro veterinario"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// UpdateAvailabilityResponse reports how many slot records were flipped.
// One logical hour can span several records, so this is usually larger
// than the number of selected ids.
type UpdateAvailabilityResponse struct {
	Updated int64 `json:"updated"`
}

// Handle PATCH /api/v1/slots/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /slots/availability - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateAvailability(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/availability - Slot not found: user=%s", user.ID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PATCH /slots/availability - Access denied: user=%s", user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /slots/availability - Failed to update availability: user=%s, error=%v",
				user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/availability - Updated %d slot records: user=%s, disponible=%t",
		updated, user.ID, req.Disponible)
	handlers.RespondJSON(w, http.StatusOK, UpdateAvailabilityResponse{Updated: updated})
}
