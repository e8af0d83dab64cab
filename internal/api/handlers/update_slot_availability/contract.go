package update_slot_availability

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

type SlotService interface {
	UpdateAvailability(ctx context.Context, user *identsvc.Usuario, req *models.UpdateAvailabilityRequest) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
