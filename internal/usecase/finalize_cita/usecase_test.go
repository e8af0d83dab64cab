package finalize_cita

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	citaStorage "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/cita"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

type fakeCitaRepo struct {
	cita        *domain.Cita
	finalizeErr error
	frozen      *float64
}

func (f *fakeCitaRepo) GetByID(ctx context.Context, id string) (*domain.Cita, error) {
	if f.cita == nil || f.cita.ID != id {
		return nil, citaStorage.ErrCitaNotFound
	}
	clone := *f.cita
	return &clone, nil
}

func (f *fakeCitaRepo) Finalize(ctx context.Context, id string, montoTotal float64) error {
	if f.finalizeErr != nil {
		return f.finalizeErr
	}
	f.frozen = &montoTotal
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func openCita() *domain.Cita {
	surcharge := types.FlexFloat(3000)
	payout := types.FlexFloat(7000)

	return &domain.Cita{
		ID:     "cita-1",
		SlotID: "slot-1",
		DatosDueno: domain.DatosDueno{
			Nombre:   "Ana Soto",
			Telefono: "+56911112222",
		},
		LocationData: domain.LocationData{
			ComunaNombre:         "Maipu",
			Veterinario:          domain.VeterinarioRef{ID: "vet-1", Nombre: "Dra. Rojas"},
			CostoAdicionalComuna: &surcharge,
		},
		Mascotas: []domain.Mascota{
			{
				Nombre:  "Rocky",
				Especie: domain.EspeciePerro,
				Servicios: []domain.CitaServicio{
					{ID: "s1", Nombre: "Consulta general", Precio: types.FlexFloat(12000), PrecioVet: &payout},
					{ID: "s2", Nombre: "Vacuna antirrabica", Precio: types.FlexFloat(6000)},
				},
			},
		},
		Estado:        true,
		Finalizada:    false,
		PrecioBase:    15000,
		PrecioBaseVet: 10000,
	}
}

func adminUser() *identsvc.Usuario {
	return &identsvc.Usuario{ID: "admin-1", Nombre: "Admin", Role: domain.RoleAdmin}
}

func TestFinalizeCita(t *testing.T) {
	t.Run("freezes the owner total once", func(t *testing.T) {
		repo := &fakeCitaRepo{cita: openCita()}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{Caller: adminUser(), CitaID: "cita-1"})
		require.NoError(t, err)

		// 15000 base + 12000 + 6000 + 3000 surcharge.
		require.NotNil(t, repo.frozen)
		assert.Equal(t, 36000.0, *repo.frozen)
		assert.Equal(t, 36000.0, resp.MontoTotal)
		assert.True(t, resp.Finalizada)
		assert.Equal(t, 7000.0, resp.MontoTotalVet)
		assert.Equal(t, "Consulta general: $12000\nVacuna antirrabica: $6000", resp.Servicios)
	})

	t.Run("vet may finalize only its own citas", func(t *testing.T) {
		repo := &fakeCitaRepo{cita: openCita()}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		otherVet := &identsvc.Usuario{ID: "vet-2", Nombre: "Dr. Perez", Role: domain.RoleVet}
		_, err := uc.Execute(context.Background(), &Request{Caller: otherVet, CitaID: "cita-1"})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, repo.frozen)

		ownVet := &identsvc.Usuario{ID: "vet-1", Nombre: "Dra. Rojas", Role: domain.RoleVet}
		_, err = uc.Execute(context.Background(), &Request{Caller: ownVet, CitaID: "cita-1"})
		assert.NoError(t, err)
	})

	t.Run("second finalize is rejected", func(t *testing.T) {
		cita := openCita()
		cita.Finalizada = true
		cita.MontoTotal = 36000

		repo := &fakeCitaRepo{cita: cita}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Caller: adminUser(), CitaID: "cita-1"})
		assert.ErrorIs(t, err, ErrAlreadyFinalizada)
		assert.Nil(t, repo.frozen)
	})

	t.Run("lost finalization race", func(t *testing.T) {
		repo := &fakeCitaRepo{cita: openCita(), finalizeErr: citaStorage.ErrAlreadyFinalizada}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Caller: adminUser(), CitaID: "cita-1"})
		assert.ErrorIs(t, err, ErrAlreadyFinalizada)
	})

	t.Run("unknown cita", func(t *testing.T) {
		repo := &fakeCitaRepo{}
		uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Caller: adminUser(), CitaID: "missing"})
		assert.ErrorIs(t, err, ErrCitaNotFound)
	})
}
