package finalize_cita

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// CitaRepository is the appointment storage surface the usecase needs.
// GetByID locks the row inside a transaction; Finalize is the guarded
// one-way flip that freezes the owner total.
type CitaRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cita, error)
	Finalize(ctx context.Context, id string, montoTotal float64) error
}

// TransactionManager wraps the read-check-freeze in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the narrow logging interface the usecase depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
