package simulator

import (
	"math"
	"math/rand"
)

// Noise level labels recognized by the noise injector. Any other label means
// no noise.
const (
	NoiseSmall = "small"
	NoiseLarge = "large"
)

// NoiseCoefficient maps a noise level label to its relative magnitude.
func NoiseCoefficient(level string) float64 {
	switch level {
	case NoiseSmall:
		return 0.1
	case NoiseLarge:
		return 0.3
	default:
		return 0
	}
}

// NoiseInjector adds per-point Gaussian noise with standard deviation
// proportional to the point's absolute value. Zero-valued points stay exact.
type NoiseInjector struct {
	Rand *rand.Rand
}

func (n NoiseInjector) Apply(values []float64, level string) []float64 {
	coeff := NoiseCoefficient(level)
	out := make([]float64, len(values))
	copy(out, values)
	if coeff == 0 {
		return out
	}
	for i, v := range out {
		out[i] = v + n.Rand.NormFloat64()*coeff*math.Abs(v)
	}
	return out
}

// OutlierInjector replaces round(pct·n) distinct random positions with draws
// from Uniform(-1, 1) and returns the series together with the anomaly mask.
// The mask is true at exactly the replaced positions.
type OutlierInjector struct {
	Rand *rand.Rand
}

func (o OutlierInjector) Apply(values []float64, pct float64) ([]float64, []bool) {
	out := make([]float64, len(values))
	copy(out, values)
	mask := make([]bool, len(values))

	count := corruptionCount(len(values), pct)
	if count == 0 {
		return out, mask
	}
	for _, idx := range o.Rand.Perm(len(values))[:count] {
		out[idx] = o.Rand.Float64()*2 - 1
		mask[idx] = true
	}
	return out, mask
}

// MissingInjector sets round(pct·n) distinct random positions to NaN. The
// selection is independent of the outlier selection, so a missing draw can
// land on a flagged outlier; the anomaly mask is never touched here.
type MissingInjector struct {
	Rand *rand.Rand
}

func (m MissingInjector) Apply(values []float64, pct float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	count := corruptionCount(len(values), pct)
	if count == 0 {
		return out
	}
	for _, idx := range m.Rand.Perm(len(values))[:count] {
		out[idx] = math.NaN()
	}
	return out
}

func corruptionCount(n int, pct float64) int {
	if n == 0 || pct <= 0 {
		return 0
	}
	count := int(math.Round(pct * float64(n)))
	if count > n {
		count = n
	}
	return count
}
