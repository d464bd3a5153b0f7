package simulator

// Target interval for the rescaled base signal. Corruptors operate on the
// rescaled series and never re-normalize, so the bound is nominal only.
const (
	rescaleMin = -1.0
	rescaleMax = 1.0
)

// Composer combines independent components into one base signal and rescales
// it into [-1, 1]. Absolute scale is destroyed by design; only shape survives.
type Composer struct {
	mode CompositionMode
}

func NewComposer(mode CompositionMode) *Composer {
	return &Composer{mode: mode}
}

// Compose combines the components and min-max rescales the result.
func (c *Composer) Compose(components ...[]float64) []float64 {
	return Rescale(Combine(c.mode, components...))
}

// Combine sums the components element-wise, or multiplies them when the mode
// is multiplicative. All components must share the same length.
func Combine(mode CompositionMode, components ...[]float64) []float64 {
	if len(components) == 0 {
		return nil
	}
	out := make([]float64, len(components[0]))
	copy(out, components[0])
	for _, comp := range components[1:] {
		for i := range out {
			if mode == ModeMultiplicative {
				out[i] *= comp[i]
			} else {
				out[i] += comp[i]
			}
		}
	}
	return out
}

// Rescale maps values into [-1, 1] by global min-max normalization. A
// zero-variance series (min == max) maps every point to 0 rather than
// dividing by zero.
func Rescale(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(values))
	if lo == hi {
		return out
	}
	scale := (rescaleMax - rescaleMin) / (hi - lo)
	for i, v := range values {
		out[i] = rescaleMin + (v-lo)*scale
	}
	return out
}
