package citas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	citaStorage "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/cita"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/internal/service/citas/models"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

type fakeCitaRepo struct {
	citas      map[string]*domain.Cita
	listResult []*domain.Cita
	lastFilter domain.CitaFilter
}

func (f *fakeCitaRepo) GetByID(ctx context.Context, id string) (*domain.Cita, error) {
	if c, ok := f.citas[id]; ok {
		return c, nil
	}
	return nil, citaStorage.ErrCitaNotFound
}

func (f *fakeCitaRepo) List(ctx context.Context, filter domain.CitaFilter) ([]*domain.Cita, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func citaFor(vetID string, finalizada bool, montoTotal float64) *domain.Cita {
	surcharge := types.FlexFloat(3000)

	return &domain.Cita{
		ID:     "cita-1",
		SlotID: "slot-1",
		LocationData: domain.LocationData{
			Veterinario:          domain.VeterinarioRef{ID: vetID, Nombre: "Dra. Rojas"},
			CostoAdicionalComuna: &surcharge,
		},
		Mascotas: []domain.Mascota{
			{
				Nombre:  "Rocky",
				Especie: domain.EspeciePerro,
				Servicios: []domain.CitaServicio{
					{ID: "s1", Nombre: "Consulta general", Precio: types.FlexFloat(12000)},
				},
			},
		},
		Estado:     true,
		Finalizada: finalizada,
		MontoTotal: montoTotal,
		PrecioBase: 15000,
	}
}

func TestGetByID(t *testing.T) {
	t.Run("open cita reports the advisory total", func(t *testing.T) {
		repo := &fakeCitaRepo{citas: map[string]*domain.Cita{"cita-1": citaFor("vet-1", false, 0)}}
		svc := NewService(repo, nopLogger{})

		adminUser := &identsvc.Usuario{ID: "admin-1", Role: domain.RoleAdmin}
		resp, err := svc.GetByID(context.Background(), adminUser, "cita-1")
		require.NoError(t, err)

		// Recomputed on read: 15000 base + 12000 + 3000 surcharge.
		assert.Equal(t, 30000.0, resp.MontoTotal)
		assert.False(t, resp.Finalizada)
	})

	t.Run("finalized cita keeps the frozen total", func(t *testing.T) {
		// The stored value wins even if the line items would add up
		// differently today.
		repo := &fakeCitaRepo{citas: map[string]*domain.Cita{"cita-1": citaFor("vet-1", true, 28000)}}
		svc := NewService(repo, nopLogger{})

		adminUser := &identsvc.Usuario{ID: "admin-1", Role: domain.RoleAdmin}
		resp, err := svc.GetByID(context.Background(), adminUser, "cita-1")
		require.NoError(t, err)

		assert.Equal(t, 28000.0, resp.MontoTotal)
		assert.True(t, resp.Finalizada)
	})

	t.Run("vet access limited to own citas", func(t *testing.T) {
		repo := &fakeCitaRepo{citas: map[string]*domain.Cita{"cita-1": citaFor("vet-1", false, 0)}}
		svc := NewService(repo, nopLogger{})

		otherVet := &identsvc.Usuario{ID: "vet-2", Role: domain.RoleVet}
		_, err := svc.GetByID(context.Background(), otherVet, "cita-1")
		assert.ErrorIs(t, err, ErrAccessDenied)

		ownVet := &identsvc.Usuario{ID: "vet-1", Role: domain.RoleVet}
		_, err = svc.GetByID(context.Background(), ownVet, "cita-1")
		assert.NoError(t, err)
	})

	t.Run("unknown cita", func(t *testing.T) {
		repo := &fakeCitaRepo{citas: map[string]*domain.Cita{}}
		svc := NewService(repo, nopLogger{})

		adminUser := &identsvc.Usuario{ID: "admin-1", Role: domain.RoleAdmin}
		_, err := svc.GetByID(context.Background(), adminUser, "missing")
		assert.ErrorIs(t, err, ErrCitaNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("vet pinned to own citas regardless of filter", func(t *testing.T) {
		repo := &fakeCitaRepo{listResult: []*domain.Cita{citaFor("vet-1", false, 0)}}
		svc := NewService(repo, nopLogger{})

		otherVetID := "vet-9"
		vet := &identsvc.Usuario{ID: "vet-1", Role: domain.RoleVet}

		resp, err := svc.List(context.Background(), vet, &models.ListCitasRequest{VeterinarioID: &otherVetID})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.VeterinarioID)
		assert.Equal(t, "vet-1", *repo.lastFilter.VeterinarioID)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("admin filter passes through", func(t *testing.T) {
		repo := &fakeCitaRepo{}
		svc := NewService(repo, nopLogger{})

		vetID := "vet-9"
		finalizada := true
		adminUser := &identsvc.Usuario{ID: "admin-1", Role: domain.RoleAdmin}

		_, err := svc.List(context.Background(), adminUser, &models.ListCitasRequest{
			VeterinarioID: &vetID,
			Finalizada:    &finalizada,
		})
		require.NoError(t, err)

		require.NotNil(t, repo.lastFilter.VeterinarioID)
		assert.Equal(t, "vet-9", *repo.lastFilter.VeterinarioID)
		require.NotNil(t, repo.lastFilter.Finalizada)
		assert.True(t, *repo.lastFilter.Finalizada)
	})
}
