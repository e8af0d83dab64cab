package update_slot_comunas

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud invalido"
	msgInvalidInput       = "lista de comunas invalida"
	msgSlotNotFound       = "horario no encontrado"
	msgAccessDenied       = "solo un administrador puede editar las comunas"
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

// Handle PUT /api/v1/slots/{slotId}/comunas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /slots/{id}/comunas - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	slotID := mux.Vars(r)["slotId"]

	var req models.UpdateComunasRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id}/comunas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateComunas(r.Context(), user, slotID, &req); err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id}/comunas - Invalid input: slot=%s, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id}/comunas - Slot not found: slot=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PUT /slots/{id}/comunas - Access denied: user=%s, slot=%s", user.ID, slotID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PUT /slots/{id}/comunas - Failed to update comunas: slot=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id}/comunas - Comunas updated: user=%s, slot=%s", user.ID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
