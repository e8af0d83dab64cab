package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a monetary amount that tolerates legacy payloads where the
// value arrives as a JSON string ("5000") instead of a number. Values that
// cannot be parsed decode to 0 rather than failing the whole document.
type FlexFloat float64

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
