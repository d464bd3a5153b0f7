package simulator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFrequency indicates an unparseable frequency token.
var ErrInvalidFrequency = errors.New("invalid frequency token")

// TimeAxis is the timestamp index for one series: strictly increasing,
// fixed spacing, inclusive of both bounds subject to alignment.
// Immutable once built.
type TimeAxis struct {
	timestamps []time.Time
	step       time.Duration
}

// ParseFrequency parses a pandas-style frequency token ("1D", "6H", "30T",
// "10S", "15MIN"). A bare unit means a multiplier of 1.
func ParseFrequency(token string) (time.Duration, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, token)
	}

	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	mult := 1
	if i > 0 {
		n, err := strconv.Atoi(t[:i])
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, token)
		}
		mult = n
	}

	var unit time.Duration
	switch t[i:] {
	case "S":
		unit = time.Second
	case "T", "MIN":
		unit = time.Minute
	case "H":
		unit = time.Hour
	case "D":
		unit = 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, token)
	}

	return time.Duration(mult) * unit, nil
}

// BuildTimeAxis builds the axis over [start, end] with the given frequency
// token. Deterministic: identical arguments produce an identical axis.
func BuildTimeAxis(start, end time.Time, freq string) (*TimeAxis, error) {
	step, err := ParseFrequency(freq)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("time axis: end %s before start %s", end, start)
	}

	var ts []time.Time
	for t := start; !t.After(end); t = t.Add(step) {
		ts = append(ts, t)
	}

	return &TimeAxis{timestamps: ts, step: step}, nil
}

// Len returns the number of points on the axis.
func (a *TimeAxis) Len() int {
	return len(a.timestamps)
}

// At returns the timestamp at index i.
func (a *TimeAxis) At(i int) time.Time {
	return a.timestamps[i]
}

// Step returns the spacing between consecutive timestamps.
func (a *TimeAxis) Step() time.Duration {
	return a.step
}

// Timestamps returns a copy of the axis timestamps.
func (a *TimeAxis) Timestamps() []time.Time {
	out := make([]time.Time, len(a.timestamps))
	copy(out, a.timestamps)
	return out
}

// SpanDays returns the distance between the first and last timestamp in days.
func (a *TimeAxis) SpanDays() float64 {
	if len(a.timestamps) < 2 {
		return 0
	}
	last := a.timestamps[len(a.timestamps)-1]
	return last.Sub(a.timestamps[0]).Hours() / 24
}
