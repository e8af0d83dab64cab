package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	cases := map[string]struct {
		in   string
		want float64
	}{
		"number":          {`3000`, 3000},
		"decimal":         {`2500.5`, 2500.5},
		"numeric string":  {`"3000"`, 3000},
		"padded string":   {`" 3000 "`, 3000},
		"null":            {`null`, 0},
		"empty string":    {`""`, 0},
		"garbage string":  {`"gratis"`, 0},
		"negative number": {`-500`, -500},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.Float64())
		})
	}
}

func TestFlexFloatMarshal(t *testing.T) {
	out, err := json.Marshal(FlexFloat(3000))
	require.NoError(t, err)
	assert.Equal(t, `3000`, string(out))

	// Round trip through a struct field.
	type wrapper struct {
		Precio FlexFloat `json:"precio"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"precio":"4500"}`), &w))

	out, err = json.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, `{"precio":4500}`, string(out))
}
