package citas

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
)

// CitaRepository is the appointment storage surface the service needs.
type CitaRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cita, error)
	List(ctx context.Context, filter domain.CitaFilter) ([]*domain.Cita, error)
}

// Logger is the narrow logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
