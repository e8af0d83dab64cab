package slots

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// SlotRepository is the slot storage surface the service needs.
type SlotRepository interface {
	List(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error)
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.TimeSlot, error)
	SetDisponibleByKey(ctx context.Context, key domain.SlotKey, disponible bool) (int64, error)
	UpdateComunas(ctx context.Context, id string, comunas []domain.SlotComuna) error
	Delete(ctx context.Context, id string) error
}

// Logger is the narrow logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
