package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	t.Run("recognizes pandas-style tokens", func(t *testing.T) {
		cases := map[string]time.Duration{
			"1D":    24 * time.Hour,
			"D":     24 * time.Hour,
			"6H":    6 * time.Hour,
			"30T":   30 * time.Minute,
			"15MIN": 15 * time.Minute,
			"10S":   10 * time.Second,
			"1h":    time.Hour,
		}
		for token, want := range cases {
			got, err := ParseFrequency(token)
			require.NoError(t, err, token)
			assert.Equal(t, want, got, token)
		}
	})

	t.Run("rejects unparseable tokens", func(t *testing.T) {
		for _, token := range []string{"", "X", "10", "1W", "H1", "-1D", "0D"} {
			_, err := ParseFrequency(token)
			require.Error(t, err, token)
			assert.ErrorIs(t, err, ErrInvalidFrequency, token)
		}
	})
}

func TestBuildTimeAxis(t *testing.T) {
	start := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	t.Run("spans both bounds with fixed spacing", func(t *testing.T) {
		axis, err := BuildTimeAxis(start, end, "1D")
		require.NoError(t, err)
		require.Equal(t, 8, axis.Len())
		assert.Equal(t, start, axis.At(0))
		assert.Equal(t, end, axis.At(axis.Len()-1))
		for i := 1; i < axis.Len(); i++ {
			assert.Equal(t, 24*time.Hour, axis.At(i).Sub(axis.At(i-1)))
		}
	})

	t.Run("last timestamp never exceeds end", func(t *testing.T) {
		axis, err := BuildTimeAxis(start, start.Add(25*time.Hour), "6H")
		require.NoError(t, err)
		require.Equal(t, 5, axis.Len())
		assert.False(t, axis.At(axis.Len()-1).After(start.Add(25*time.Hour)))
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		a, err := BuildTimeAxis(start, end, "30T")
		require.NoError(t, err)
		b, err := BuildTimeAxis(start, end, "30T")
		require.NoError(t, err)
		assert.Equal(t, a.Timestamps(), b.Timestamps())
	})

	t.Run("invalid frequency fails", func(t *testing.T) {
		_, err := BuildTimeAxis(start, end, "1Q")
		assert.ErrorIs(t, err, ErrInvalidFrequency)
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := BuildTimeAxis(end, start, "1D")
		assert.Error(t, err)
	})

	t.Run("span in days", func(t *testing.T) {
		axis, err := BuildTimeAxis(start, end, "1D")
		require.NoError(t, err)
		assert.InDelta(t, 7.0, axis.SpanDays(), 1e-12)
	})
}
