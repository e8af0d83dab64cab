package finalize_cita

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/api/middleware"
	finalizeCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/finalize_cita"
)

const (
	msgCitaNotFound      = "cita no encontrada"
	msgAlreadyFinalizada = "la cita ya fue finalizada"
	msgAccessDenied      = "no puede finalizar citas de otro veterinario"
)

type Handler struct {
	useCase FinalizeCitaUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeCitaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/citas/{citaId}/finalize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /citas/{id}/finalize - No user in context")
		handlers.RespondInternalError(w)
		return
	}

	citaID := mux.Vars(r)["citaId"]

	result, err := h.useCase.Execute(r.Context(), &finalizeCita.Request{
		Caller: caller,
		CitaID: citaID,
	})
	if err != nil {
		switch {
		case errors.Is(err, finalizeCita.ErrCitaNotFound):
			h.logger.Warn("POST /citas/{id}/finalize - Cita not found: cita=%s", citaID)
			handlers.RespondNotFound(w, msgCitaNotFound)

		case errors.Is(err, finalizeCita.ErrAlreadyFinalizada):
			h.logger.Warn("POST /citas/{id}/finalize - Already finalizada: cita=%s", citaID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalizada)

		case errors.Is(err, finalizeCita.ErrAccessDenied):
			h.logger.Warn("POST /citas/{id}/finalize - Access denied: caller=%s, cita=%s", caller.ID, citaID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /citas/{id}/finalize - Failed to finalize cita: cita=%s, error=%v", citaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /citas/{id}/finalize - Cita finalized: caller=%s, cita=%s, total=%.2f",
		caller.ID, citaID, result.MontoTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
