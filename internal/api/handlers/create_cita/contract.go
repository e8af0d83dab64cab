package create_cita

import (
	"context"

	createCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/create_cita"
)

type CreateCitaUseCase interface {
	Execute(ctx context.Context, req *createCita.Request) (*createCita.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
