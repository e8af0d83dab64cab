package create_cita

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/catalogsvc"
)

// SlotRepository is the slot storage surface the usecase needs. GetByID
// locks the row inside a transaction; Reserve is the guarded flip.
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	Reserve(ctx context.Context, id string) error
}

// CitaRepository persists the new appointment.
type CitaRepository interface {
	Create(ctx context.Context, cita *domain.Cita) (*domain.Cita, error)
}

// CatalogClient resolves services and locations from the catalog.
type CatalogClient interface {
	GetServicio(ctx context.Context, servicioID string) (*catalogsvc.Servicio, error)
	GetComuna(ctx context.Context, comunaID string) (*catalogsvc.Comuna, error)
	GetRegion(ctx context.Context, regionID string) (*catalogsvc.Region, error)
}

// TransactionManager wraps the reservation and the insert in one
// transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface the usecase depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
