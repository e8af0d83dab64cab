package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString(t *testing.T) {
	t.Run("parse and validate", func(t *testing.T) {
		d, err := NewDateStringFromString("2026-09-07")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-07", d.String())

		_, err = NewDateStringFromString("07-09-2026")
		assert.Error(t, err)

		_, err = NewDateStringFromString("2026-9-7")
		assert.Error(t, err)

		_, err = NewDateStringFromString("")
		assert.Error(t, err)
	})

	t.Run("lexical order equals chronological order", func(t *testing.T) {
		assert.True(t, DateString("2026-09-07").Before(DateString("2026-09-13")))
		assert.True(t, DateString("2026-10-01").After(DateString("2026-09-30")))
		assert.False(t, DateString("2026-09-07").Before(DateString("2026-09-07")))
	})

	t.Run("round trip through time.Time", func(t *testing.T) {
		d := NewDateString(time.Date(2026, 9, 7, 18, 30, 0, 0, time.UTC))
		assert.Equal(t, DateString("2026-09-07"), d)

		parsed, err := d.Time()
		require.NoError(t, err)
		assert.Equal(t, time.Monday, parsed.Weekday())
	})
}

func TestTimeString(t *testing.T) {
	t.Run("parse and validate", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00", ts.String())

		_, err = NewTimeStringFromString("9:00")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("25:00")
		assert.Error(t, err)
	})

	t.Run("comparisons", func(t *testing.T) {
		assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
		assert.True(t, TimeString("20:00").IsAfter(TimeString("09:00")))
	})

	t.Run("add minutes", func(t *testing.T) {
		got, err := TimeString("09:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:30"), got)
	})
}
