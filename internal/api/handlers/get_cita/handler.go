package get_cita

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas"
)

const (
	msgCitaNotFound = "cita no encontrada"
	msgAccessDenied = "no puede ver citas de otro veterinario"
)

type Handler struct {
	service CitaService
	logger  Logger
}

func NewHandler(service CitaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/citas/{citaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /citas/{id} - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	citaID := mux.Vars(r)["citaId"]

	result, err := h.service.GetByID(r.Context(), user, citaID)
	if err != nil {
		switch {
		case errors.Is(err, citas.ErrCitaNotFound):
			h.logger.Warn("GET /citas/{id} - Cita not found: cita=%s", citaID)
			handlers.RespondNotFound(w, msgCitaNotFound)

		case errors.Is(err, citas.ErrAccessDenied):
			h.logger.Warn("GET /citas/{id} - Access denied: user=%s, cita=%s", user.ID, citaID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /citas/{id} - Failed to get cita: cita=%s, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /citas/{id} - Cita returned: user=%s, cita=%s", user.ID, citaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
