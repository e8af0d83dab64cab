package get_cita

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas/models"
)

type CitaService interface {
	GetByID(ctx context.Context, user *identsvc.Usuario, id string) (*models.CitaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
