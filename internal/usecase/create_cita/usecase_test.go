package create_cita

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	slotStorage "github.com/vetacasa/VetACasa-BookingService/internal/infra/storage/slot"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/catalogsvc"
	"github.com/vetacasa/VetACasa-BookingService/pkg/ptr"
	"github.com/vetacasa/VetACasa-BookingService/pkg/types"
)

type fakeSlotRepo struct {
	slot       *domain.TimeSlot
	reserveErr error
	reserved   []string
}

func (f *fakeSlotRepo) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotStorage.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) Reserve(ctx context.Context, id string) error {
	if f.reserveErr != nil {
		return f.reserveErr
	}
	f.reserved = append(f.reserved, id)
	return nil
}

type fakeCitaRepo struct {
	created *domain.Cita
}

func (f *fakeCitaRepo) Create(ctx context.Context, cita *domain.Cita) (*domain.Cita, error) {
	f.created = cita
	return cita, nil
}

type fakeCatalogClient struct {
	servicios map[string]*catalogsvc.Servicio
	comunas   map[string]*catalogsvc.Comuna
	regiones  map[string]*catalogsvc.Region
}

func (f *fakeCatalogClient) GetServicio(ctx context.Context, id string) (*catalogsvc.Servicio, error) {
	if s, ok := f.servicios[id]; ok {
		return s, nil
	}
	return nil, catalogsvc.ErrServicioNotFound
}

func (f *fakeCatalogClient) GetComuna(ctx context.Context, id string) (*catalogsvc.Comuna, error) {
	if c, ok := f.comunas[id]; ok {
		return c, nil
	}
	return nil, catalogsvc.ErrComunaNotFound
}

func (f *fakeCatalogClient) GetRegion(ctx context.Context, id string) (*catalogsvc.Region, error) {
	if r, ok := f.regiones[id]; ok {
		return r, nil
	}
	return nil, catalogsvc.ErrRegionNotFound
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const (
	testPrecioBase    = 15000.0
	testPrecioBaseVet = 10000.0
)

func availableSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:          "slot-1",
		Fecha:       types.DateString("2026-09-07"),
		Hora:        types.TimeString("10:00"),
		Veterinario: domain.VeterinarioRef{ID: "vet-1", Nombre: "Dra. Rojas"},
		Comunas: []domain.SlotComuna{
			{ID: "c1", Nombre: "Providencia", Valor: 0},
			{ID: "c2", Nombre: "Maipu", Valor: 3000},
		},
		ComunaIDs:  []string{"c1", "c2"},
		Disponible: true,
	}
}

func testCatalog() *fakeCatalogClient {
	return &fakeCatalogClient{
		servicios: map[string]*catalogsvc.Servicio{
			"s1": {
				ID:             "s1",
				Nombre:         "Consulta general",
				DisponiblePara: catalogsvc.DisponiblePara{Perro: true, Gato: true},
				Precio:         12000,
				PrecioVet:      ptr.Ptr(7000.0),
			},
			"s2": {
				ID:             "s2",
				Nombre:         "Vacuna antirrabica",
				DisponiblePara: catalogsvc.DisponiblePara{Perro: true},
				Precio:         8000,
				EnPromocion:    true,
				NewPrice:       ptr.Ptr(6000.0),
			},
		},
		comunas: map[string]*catalogsvc.Comuna{
			"c2": {ID: "c2", Nombre: "Maipu"},
		},
		regiones: map[string]*catalogsvc.Region{
			"r1": {ID: "r1", Nombre: "Metropolitana"},
		},
	}
}

func validRequest() *Request {
	return &Request{
		SlotID:   "slot-1",
		RegionID: "r1",
		ComunaID: "c2",
		DatosDueno: domain.DatosDueno{
			Nombre:    "Ana Soto",
			Telefono:  "+56911112222",
			Direccion: "Av. Italia 850",
		},
		Mascotas: []MascotaInput{
			{Nombre: "Rocky", Especie: domain.EspeciePerro, ServicioIDs: []string{"s1", "s2"}},
		},
	}
}

func newTestUseCase(slotRepo *fakeSlotRepo, citaRepo *fakeCitaRepo, catalog *fakeCatalogClient) *UseCase {
	return NewUseCase(slotRepo, citaRepo, catalog, fakeTxManager{}, testPrecioBase, testPrecioBaseVet, nopLogger{})
}

func TestCreateCita(t *testing.T) {
	t.Run("reserves slot and freezes pricing", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{slot: availableSlot()}
		citaRepo := &fakeCitaRepo{}
		uc := newTestUseCase(slotRepo, citaRepo, testCatalog())

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, []string{"slot-1"}, slotRepo.reserved)
		require.NotNil(t, citaRepo.created)

		cita := citaRepo.created
		assert.NotEmpty(t, cita.ID)
		assert.Equal(t, "slot-1", cita.SlotID)
		assert.False(t, cita.Finalizada)
		assert.True(t, cita.Estado)
		assert.Equal(t, 0.0, cita.MontoTotal)
		assert.Equal(t, testPrecioBase, cita.PrecioBase)
		assert.Equal(t, testPrecioBaseVet, cita.PrecioBaseVet)

		// Location pinned from the slot and the catalog.
		assert.Equal(t, "Metropolitana", cita.LocationData.RegionNombre)
		assert.Equal(t, "Maipu", cita.LocationData.ComunaNombre)
		assert.Equal(t, "vet-1", cita.LocationData.Veterinario.ID)
		require.NotNil(t, cita.LocationData.CostoAdicionalComuna)
		assert.Equal(t, 3000.0, cita.LocationData.CostoAdicionalComuna.Float64())

		// Promo price resolved at attach time: s2 charged at 6000, not 8000.
		require.Len(t, cita.Mascotas, 1)
		servicios := cita.Mascotas[0].Servicios
		require.Len(t, servicios, 2)
		assert.Equal(t, 12000.0, servicios[0].Precio.Float64())
		require.NotNil(t, servicios[0].PrecioVet)
		assert.Equal(t, 7000.0, servicios[0].PrecioVet.Float64())
		assert.Equal(t, 6000.0, servicios[1].Precio.Float64())
		assert.Nil(t, servicios[1].PrecioVet)

		// Advisory totals: 15000 + 12000 + 6000 + 3000.
		assert.Equal(t, 36000.0, resp.MontoTotal)
		assert.Equal(t, 7000.0, resp.MontoTotalVet)
	})

	t.Run("slot already taken is a conflict", func(t *testing.T) {
		slot := availableSlot()
		slot.Disponible = false
		slotRepo := &fakeSlotRepo{slot: slot}
		citaRepo := &fakeCitaRepo{}
		uc := newTestUseCase(slotRepo, citaRepo, testCatalog())

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, citaRepo.created)
	})

	t.Run("lost reservation race is a conflict", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{slot: availableSlot(), reserveErr: slotStorage.ErrSlotNotAvailable}
		citaRepo := &fakeCitaRepo{}
		uc := newTestUseCase(slotRepo, citaRepo, testCatalog())

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, citaRepo.created)
	})

	t.Run("unknown slot", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{}
		uc := newTestUseCase(slotRepo, &fakeCitaRepo{}, testCatalog())

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("comuna outside the slot batch", func(t *testing.T) {
		catalog := testCatalog()
		catalog.comunas["c9"] = &catalogsvc.Comuna{ID: "c9", Nombre: "Pudahuel"}

		slotRepo := &fakeSlotRepo{slot: availableSlot()}
		uc := newTestUseCase(slotRepo, &fakeCitaRepo{}, catalog)

		req := validRequest()
		req.ComunaID = "c9"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrComunaNotInSlot)
		assert.Empty(t, slotRepo.reserved)
	})

	t.Run("species availability enforced", func(t *testing.T) {
		slotRepo := &fakeSlotRepo{slot: availableSlot()}
		uc := newTestUseCase(slotRepo, &fakeCitaRepo{}, testCatalog())

		req := validRequest()
		// s2 is perro-only.
		req.Mascotas = []MascotaInput{
			{Nombre: "Misha", Especie: domain.EspecieGato, ServicioIDs: []string{"s2"}},
		}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServicioNoDisponible)
		assert.Empty(t, slotRepo.reserved)
	})

	t.Run("unknown servicio", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{slot: availableSlot()}, &fakeCitaRepo{}, testCatalog())

		req := validRequest()
		req.Mascotas[0].ServicioIDs = []string{"s9"}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServicioNotFound)
	})

	t.Run("unknown comuna and region", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{slot: availableSlot()}, &fakeCitaRepo{}, testCatalog())

		req := validRequest()
		req.ComunaID = "missing"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrComunaNotFound)

		req = validRequest()
		req.RegionID = "missing"
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRegionNotFound)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotRepo{slot: availableSlot()}, &fakeCitaRepo{}, testCatalog())

		cases := map[string]func(*Request){
			"missing slot":    func(r *Request) { r.SlotID = "" },
			"missing comuna":  func(r *Request) { r.ComunaID = "" },
			"missing owner":   func(r *Request) { r.DatosDueno = domain.DatosDueno{} },
			"no mascotas":     func(r *Request) { r.Mascotas = nil },
			"unknown especie": func(r *Request) { r.Mascotas[0].Especie = "conejo" },
			"missing especie": func(r *Request) { r.Mascotas[0].Especie = "" },
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
}
