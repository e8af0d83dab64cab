package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetacasa/VetACasa-BookingService/internal/domain"
	"github.com/vetacasa/VetACasa-BookingService/pkg/ptr"
)

func TestEffectivePrice(t *testing.T) {
	t.Run("promotional price wins when flagged and defined", func(t *testing.T) {
		s := Servicio{Precio: 8000, EnPromocion: true, NewPrice: ptr.Ptr(6000.0)}
		assert.Equal(t, 6000.0, s.EffectivePrice())
	})

	t.Run("flag without price falls back to list price", func(t *testing.T) {
		s := Servicio{Precio: 8000, EnPromocion: true, NewPrice: nil}
		assert.Equal(t, 8000.0, s.EffectivePrice())
	})

	t.Run("price without flag is ignored", func(t *testing.T) {
		s := Servicio{Precio: 8000, EnPromocion: false, NewPrice: ptr.Ptr(6000.0)}
		assert.Equal(t, 8000.0, s.EffectivePrice())
	})
}

func TestAvailableFor(t *testing.T) {
	s := Servicio{DisponiblePara: DisponiblePara{Perro: true, Gato: false}}

	assert.True(t, s.AvailableFor(domain.EspeciePerro))
	assert.False(t, s.AvailableFor(domain.EspecieGato))
	assert.False(t, s.AvailableFor("conejo"))
	assert.False(t, s.AvailableFor(""))
}
