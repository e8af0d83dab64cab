package update_slot_comunas

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

type SlotService interface {
	UpdateComunas(ctx context.Context, user *identsvc.Usuario, slotID string, req *models.UpdateComunasRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
