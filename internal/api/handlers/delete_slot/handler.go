package delete_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots"
)

const (
	msgSlotNotFound = "horario no encontrado"
	msgAccessDenied = "solo un administrador puede eliminar horarios"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /slots/{id} - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	slotID := mux.Vars(r)["slotId"]

	if err := h.service.Delete(r.Context(), user, slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("DELETE /slots/{id} - Access denied: user=%s, slot=%s", user.ID, slotID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted: user=%s, slot=%s", user.ID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
