package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatosDuenoUnmarshal(t *testing.T) {
	t.Run("canonical keys", func(t *testing.T) {
		raw := `{"nombre":"Ana Soto","telefono":"+56911112222","email":"ana@example.cl","direccion":"Av. Italia 850"}`

		var d DatosDueno
		require.NoError(t, json.Unmarshal([]byte(raw), &d))

		assert.Equal(t, "Ana Soto", d.Nombre)
		assert.Equal(t, "+56911112222", d.Telefono)
		assert.Equal(t, "ana@example.cl", d.Email)
		assert.Equal(t, "Av. Italia 850", d.Direccion)
	})

	t.Run("legacy accented keys", func(t *testing.T) {
		raw := `{"nombre":"Ana Soto","teléfono":"+56911112222","dirección":"Av. Italia 850"}`

		var d DatosDueno
		require.NoError(t, json.Unmarshal([]byte(raw), &d))

		assert.Equal(t, "+56911112222", d.Telefono)
		assert.Equal(t, "Av. Italia 850", d.Direccion)
	})

	t.Run("canonical keys win over legacy", func(t *testing.T) {
		raw := `{"telefono":"+56900000000","teléfono":"+56911112222","direccion":"Calle Nueva 1","dirección":"Calle Vieja 2"}`

		var d DatosDueno
		require.NoError(t, json.Unmarshal([]byte(raw), &d))

		assert.Equal(t, "+56900000000", d.Telefono)
		assert.Equal(t, "Calle Nueva 1", d.Direccion)
	})
}
