package delete_slot

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
)

type SlotService interface {
	Delete(ctx context.Context, user *identsvc.Usuario, slotID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
