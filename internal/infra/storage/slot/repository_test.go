package slot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/ptr"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func slotRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(slotColumns).AddRow(
		"slot-1",
		"2026-09-07",
		"10:00",
		"vet-1",
		"Dra. Rojas",
		[]byte(`[{"id":"c1","nombre":"Providencia","valor":0},{"id":"c2","nombre":"Maipu","valor":3000}]`),
		[]byte(`{c1,c2}`),
		true,
		now,
		now,
	)
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM time_slots WHERE id = \$1`).
			WithArgs("slot-1").
			WillReturnRows(slotRow())

		slot, err := repo.GetByID(context.Background(), "slot-1")
		require.NoError(t, err)

		assert.Equal(t, "slot-1", slot.ID)
		assert.Equal(t, types.DateString("2026-09-07"), slot.Fecha)
		assert.Equal(t, types.TimeString("10:00"), slot.Hora)
		assert.Equal(t, "vet-1", slot.Veterinario.ID)
		assert.Equal(t, []string{"c1", "c2"}, slot.ComunaIDs)
		require.Len(t, slot.Comunas, 2)
		assert.Equal(t, 3000.0, slot.Comunas[1].Valor)
		assert.True(t, slot.Disponible)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM time_slots WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(slotColumns))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestReserve(t *testing.T) {
	t.Run("flips an available slot", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE time_slots SET disponible = \$1, updated_at = NOW\(\) WHERE id = \$2 AND disponible = \$3`).
			WithArgs(false, "slot-1", true).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Reserve(context.Background(), "slot-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means the race was lost", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE time_slots SET disponible = \$1, updated_at = NOW\(\)`).
			WithArgs(false, "slot-1", true).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Reserve(context.Background(), "slot-1")
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestCountByVeterinarioInRange(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM time_slots WHERE veterinario_id = \$1 AND fecha >= \$2 AND fecha <= \$3`).
		WithArgs("vet-1", "2026-09-07", "2026-09-13").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByVeterinarioInRange(context.Background(), "vet-1",
		types.DateString("2026-09-07"), types.DateString("2026-09-13"))
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	t.Run("comuna intersection and ordering", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM time_slots WHERE comuna_ids && \$1 AND disponible = \$2 ORDER BY fecha ASC, hora ASC`).
			WillReturnRows(slotRow())

		slots, err := repo.List(context.Background(), domain.SlotFilter{
			ComunaIDs:  []string{"c1"},
			Disponible: ptr.Ptr(true),
		})
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "slot-1", slots[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		start := types.DateString("2026-09-01")
		end := types.DateString("2026-09-30")

		mock.ExpectQuery(`SELECT .+ FROM time_slots WHERE fecha >= \$1 AND fecha <= \$2 ORDER BY fecha ASC, hora ASC`).
			WithArgs("2026-09-01", "2026-09-30").
			WillReturnRows(sqlmock.NewRows(slotColumns))

		slots, err := repo.List(context.Background(), domain.SlotFilter{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestSetDisponibleByKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE time_slots SET disponible = \$1, updated_at = NOW\(\) WHERE veterinario_id = \$2 AND fecha = \$3 AND hora = \$4`).
		WithArgs(false, "vet-1", "2026-09-07", "10:00").
		WillReturnResult(sqlmock.NewResult(0, 3))

	key := domain.SlotKey{VeterinarioID: "vet-1", Fecha: "2026-09-07", Hora: "10:00"}
	updated, err := repo.SetDisponibleByKey(context.Background(), key, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}
