package simulator

import (
	"math"
	"math/rand"
)

// CompositionMode governs how components combine and which neutral element an
// absent component contributes (0 for additive, 1 for multiplicative).
type CompositionMode string

const (
	ModeAdditive       CompositionMode = "additive"
	ModeMultiplicative CompositionMode = "multiplicative"
)

// PresenceExist marks a component axis level as present; any other level is
// treated as absent.
const PresenceExist = "exist"

// Synthesizer computes one signal component over a time axis. Implementations
// are the closed variant set {DailySeasonality, WeeklySeasonality, Trend, Cycle}.
type Synthesizer interface {
	Synthesize(axis *TimeAxis, presence string, mode CompositionMode) []float64
}

// neutral is the element that leaves the combining operator unaffected.
func neutral(mode CompositionMode) float64 {
	if mode == ModeMultiplicative {
		return 1
	}
	return 0
}

func broadcast(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DailySeasonality contributes sin(2π·hour/24) when present.
type DailySeasonality struct{}

func (DailySeasonality) Synthesize(axis *TimeAxis, presence string, mode CompositionMode) []float64 {
	if presence != PresenceExist {
		return broadcast(axis.Len(), neutral(mode))
	}
	out := make([]float64, axis.Len())
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(axis.At(i).Hour()) / 24)
		if mode == ModeMultiplicative {
			out[i]++
		}
	}
	return out
}

// WeeklySeasonality contributes sin(2π·weekday/7) when present, with a
// Monday-based 0–6 weekday index.
type WeeklySeasonality struct{}

func (WeeklySeasonality) Synthesize(axis *TimeAxis, presence string, mode CompositionMode) []float64 {
	if presence != PresenceExist {
		return broadcast(axis.Len(), neutral(mode))
	}
	out := make([]float64, axis.Len())
	for i := range out {
		weekday := (int(axis.At(i).Weekday()) + 6) % 7
		out[i] = math.Sin(2 * math.Pi * float64(weekday) / 7)
		if mode == ModeMultiplicative {
			out[i]++
		}
	}
	return out
}

// Trend contributes a linear ramp whose slope sign is drawn uniformly from
// {+1, −1} and whose magnitude is the axis span in days divided by 30, so the
// trend scales with series length rather than a fixed rate.
type Trend struct {
	Rand *rand.Rand
}

func (t Trend) Synthesize(axis *TimeAxis, presence string, mode CompositionMode) []float64 {
	if presence != PresenceExist {
		return broadcast(axis.Len(), neutral(mode))
	}
	magnitude := axis.SpanDays() / 30
	if t.Rand.Intn(2) == 0 {
		return linspace(0, magnitude, axis.Len())
	}
	return linspace(-magnitude, 0, axis.Len())
}

// Cycle contributes a quarterly sinusoid sin(2π·(quarter−1)/4) when present.
type Cycle struct{}

func (Cycle) Synthesize(axis *TimeAxis, presence string, mode CompositionMode) []float64 {
	if presence != PresenceExist {
		return broadcast(axis.Len(), neutral(mode))
	}
	out := make([]float64, axis.Len())
	for i := range out {
		quarter := (int(axis.At(i).Month())-1)/3 + 1
		out[i] = math.Sin(2 * math.Pi * float64(quarter-1) / 4)
		if mode == ModeMultiplicative {
			out[i]++
		}
	}
	return out
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
