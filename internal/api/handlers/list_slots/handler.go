package list_slots

import (
	"net/http"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
)

const msgInvalidParams = "parametros de busqueda invalidos"

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

// Handle GET /api/v1/slots
// Query params: comunaIds (csv), startDate, endDate, veterinarioId,
// disponible (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := ToSlotFilter(
		q.Get("comunaIds"),
		q.Get("startDate"),
		q.Get("endDate"),
		q.Get("veterinarioId"),
		q.Get("disponible"),
	)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Returned %d slots", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
