package list_slots

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context, filter domain.SlotFilter) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
