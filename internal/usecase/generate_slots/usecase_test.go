package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

type fakeSlotRepo struct {
	existing  int
	countErr  error
	created   []*domain.TimeSlot
	createErr error
}

func (f *fakeSlotRepo) CountByVeterinarioInRange(ctx context.Context, veterinarioID string, start, end types.DateString) (int, error) {
	return f.existing, f.countErr
}

func (f *fakeSlotRepo) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = slots
	return len(slots), nil
}

type fakeIdentClient struct {
	users map[string]*identsvc.Usuario
}

func (f *fakeIdentClient) GetUser(ctx context.Context, userID string) (*identsvc.Usuario, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, identsvc.ErrUserNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *fakeSlotRepo, ident *fakeIdentClient) *UseCase {
	return NewUseCase(repo, ident, fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		Caller:              &identsvc.Usuario{ID: "admin-1", Nombre: "Admin", Role: domain.RoleAdmin},
		TargetVeterinarioID: "vet-1",
		Comunas: []ComunaValor{
			{ID: "c1", Nombre: "Providencia", Valor: 0},
			{ID: "c2", Nombre: "Maipu", Valor: 3000},
		},
		// 2026-09-07 is a Monday, 2026-09-13 a Sunday.
		StartDate: types.DateString("2026-09-07"),
		EndDate:   types.DateString("2026-09-13"),
	}
}

func vetUser(id string) *identsvc.Usuario {
	return &identsvc.Usuario{ID: id, Nombre: "Dra. Rojas", Role: domain.RoleVet}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("generates hourly slots skipping sundays", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		// 6 working days (Mon-Sat) x 12 hours (09..20)
		assert.Equal(t, 72, resp.Generated)
		assert.Len(t, repo.created, 72)
		assert.Contains(t, resp.Message, "72 horarios")

		for _, slot := range repo.created {
			day, err := slot.Fecha.Time()
			require.NoError(t, err)
			assert.NotEqual(t, time.Sunday, day.Weekday())
			assert.True(t, slot.Disponible)
			assert.NotEmpty(t, slot.ID)
			assert.Equal(t, "vet-1", slot.Veterinario.ID)
			assert.Equal(t, []string{"c1", "c2"}, slot.ComunaIDs)
		}

		first := repo.created[0]
		assert.Equal(t, types.DateString("2026-09-07"), first.Fecha)
		assert.Equal(t, "09:00", first.Hora.String())

		last := repo.created[len(repo.created)-1]
		assert.Equal(t, types.DateString("2026-09-12"), last.Fecha)
		assert.Equal(t, "20:00", last.Hora.String())
	})

	t.Run("rejects overlapping range without inserting", func(t *testing.T) {
		repo := &fakeSlotRepo{existing: 5}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotsOverlap)
		assert.Nil(t, repo.created)
	})

	t.Run("vet can generate only for itself", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		req := validRequest()
		req.Caller = vetUser("vet-2")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)

		req.Caller = vetUser("vet-1")
		_, err = uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("target must be a staff account", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{
			"cliente-1": {ID: "cliente-1", Nombre: "Pedro", Role: domain.RoleCliente},
		}}
		uc := newTestUseCase(repo, ident)

		req := validRequest()
		req.TargetVeterinarioID = "cliente-1"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("unknown target", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{}}
		uc := newTestUseCase(repo, ident)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrVetNotFound)
	})

	t.Run("validation failures", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		cases := map[string]func(*Request){
			"missing target":      func(r *Request) { r.TargetVeterinarioID = "" },
			"no comunas":          func(r *Request) { r.Comunas = nil },
			"negative surcharge":  func(r *Request) { r.Comunas[0].Valor = -1 },
			"missing dates":       func(r *Request) { r.StartDate, r.EndDate = "", "" },
			"inverted date range": func(r *Request) { r.StartDate, r.EndDate = r.EndDate, r.StartDate },
			"malformed date":      func(r *Request) { r.StartDate = "07-09-2026" },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				req := validRequest()
				mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("single day range", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		req := validRequest()
		req.StartDate = types.DateString("2026-09-07")
		req.EndDate = types.DateString("2026-09-07")

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 12, resp.Generated)
	})

	t.Run("sunday-only range generates nothing", func(t *testing.T) {
		repo := &fakeSlotRepo{}
		ident := &fakeIdentClient{users: map[string]*identsvc.Usuario{"vet-1": vetUser("vet-1")}}
		uc := newTestUseCase(repo, ident)

		req := validRequest()
		req.StartDate = types.DateString("2026-09-13")
		req.EndDate = types.DateString("2026-09-13")

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Generated)
	})
}
