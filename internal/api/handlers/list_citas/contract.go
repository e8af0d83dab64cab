package list_citas

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas/models"
)

type CitaService interface {
	List(ctx context.Context, user *identsvc.Usuario, req *models.ListCitasRequest) (*models.CitaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
