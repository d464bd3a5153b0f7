package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	c := []float64{0, 1, 2}

	t.Run("additive sums element-wise", func(t *testing.T) {
		assert.Equal(t, []float64{11, 23, 35}, Combine(ModeAdditive, a, b, c))
	})

	t.Run("multiplicative multiplies element-wise", func(t *testing.T) {
		assert.Equal(t, []float64{0, 40, 180}, Combine(ModeMultiplicative, a, b, c))
	})

	t.Run("no components yields nil", func(t *testing.T) {
		assert.Nil(t, Combine(ModeAdditive))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = Combine(ModeAdditive, a, b)
		assert.Equal(t, []float64{1, 2, 3}, a)
	})
}

func TestRescale(t *testing.T) {
	t.Run("maps extremes onto the interval bounds", func(t *testing.T) {
		got := Rescale([]float64{2, 4, 6, 10})
		require.Len(t, got, 4)
		assert.Equal(t, -1.0, got[0])
		assert.Equal(t, 1.0, got[3])
		for _, v := range got {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("preserves ordering", func(t *testing.T) {
		got := Rescale([]float64{3, 1, 2})
		assert.Greater(t, got[0], got[2])
		assert.Greater(t, got[2], got[1])
	})

	t.Run("zero variance maps to zero", func(t *testing.T) {
		got := Rescale([]float64{5, 5, 5})
		assert.Equal(t, []float64{0, 0, 0}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Rescale(nil))
	})
}

func TestComposer(t *testing.T) {
	t.Run("output length equals component length", func(t *testing.T) {
		got := NewComposer(ModeAdditive).Compose([]float64{1, 2}, []float64{3, 4})
		assert.Len(t, got, 2)
	})

	t.Run("neutral components leave the shape to the present one", func(t *testing.T) {
		// The end-to-end composition scenario: only the weekly component is
		// present over eight daily points from 2021-07-01; everything else
		// contributes the additive neutral element.
		axis := dailyAxis(t, 7)
		mode := ModeAdditive
		daily := DailySeasonality{}.Synthesize(axis, "no", mode)
		weekly := WeeklySeasonality{}.Synthesize(axis, PresenceExist, mode)
		trend := broadcast(axis.Len(), 0)
		cycle := broadcast(axis.Len(), 0)

		combined := Combine(mode, daily, weekly, trend, cycle)
		assert.Equal(t, weekly, combined)

		scaled := Rescale(combined)
		lo, hi := scaled[0], scaled[0]
		for _, v := range scaled {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		assert.InDelta(t, -1.0, lo, 1e-12)
		assert.InDelta(t, 1.0, hi, 1e-12)
	})
}
