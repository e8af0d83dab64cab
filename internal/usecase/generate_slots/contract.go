package generate_slots

import (
	"context"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

// SlotRepository is the slot storage surface the usecase needs.
type SlotRepository interface {
	CountByVeterinarioInRange(ctx context.Context, veterinarioID string, start, end types.DateString) (int, error)
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) (int, error)
}

// IdentityClient resolves the generation target to a real account.
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*identsvc.Usuario, error)
}

// TransactionManager wraps the overlap check and the batch insert in one
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
