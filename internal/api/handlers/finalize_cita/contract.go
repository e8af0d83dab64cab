package finalize_cita

import (
	"context"

	finalizeCita "github.com/vetacasa/VetACasa-BookingService/internal/usecase/finalize_cita"
)

type FinalizeCitaUseCase interface {
	Execute(ctx context.Context, req *finalizeCita.Request) (*finalizeCita.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
