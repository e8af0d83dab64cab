package list_citas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas/models"
)

const (
	msgInvalidParams = "parametros de busqueda invalidos"
	msgAccessDenied  = "no puede listar citas de otro veterinario"
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

// Handle GET /api/v1/citas
// Query params: veterinarioId, finalizada (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /citas - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	q := r.URL.Query()

	var req models.ListCitasRequest
	if v := q.Get("veterinarioId"); v != "" {
		req.VeterinarioID = &v
	}
	if v := q.Get("finalizada"); v != "" {
		finalizada, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /citas - Invalid finalizada parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.Finalizada = &finalizada
	}

	result, err := h.service.List(r.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, citas.ErrAccessDenied):
			h.logger.Warn("GET /citas - Access denied: user=%s", user.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /citas - Failed to list citas: user=%s, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /citas - Returned %d citas: user=%s", result.Total, user.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
