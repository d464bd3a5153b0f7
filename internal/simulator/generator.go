package simulator

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"TSForge/internal/domain/models"
	"TSForge/pkg/config"
)

// ErrDone signals that the generator has emitted every series of the run.
var ErrDone = errors.New("generator: exhausted")

// Generator walks the configuration space and yields one labeled series plus
// its metadata record per repeat. It is a finite single-pass producer: once
// ErrDone is returned it stays exhausted, and a fresh run needs a fresh
// Generator. All randomness comes from the injected source, so a seeded
// source makes a run reproducible.
type Generator struct {
	startDate   time.Time
	frequencies []string
	dataSizes   []int
	repeats     int
	pctMissing  float64

	combos []Combination
	combo  int
	repeat int
	// counter increases across the whole run and names each series.
	counter int

	rng      *rand.Rand
	daily    DailySeasonality
	weekly   WeeklySeasonality
	trend    Trend
	cycle    Cycle
	noise    NoiseInjector
	outliers OutlierInjector
	missing  MissingInjector
}

// NewGenerator builds a Generator over the configuration's parameter axes.
func NewGenerator(cfg *config.Config, rng *rand.Rand) *Generator {
	space := &ConfigurationSpace{
		DailySeasonalityOptions:   cfg.DailySeasonalityOptions,
		WeeklySeasonalityOptions:  cfg.WeeklySeasonalityOptions,
		NoiseLevels:               cfg.NoiseLevels,
		TrendLevels:               cfg.TrendLevels,
		CyclicPeriods:             cfg.CyclicPeriods,
		PercentageOutliersOptions: cfg.PercentageOutliersOptions,
		DataTypes:                 cfg.DataTypes,
	}
	return &Generator{
		startDate:   cfg.StartDate,
		frequencies: cfg.Frequencies,
		dataSizes:   cfg.DataSizes,
		repeats:     cfg.Repeats,
		pctMissing:  cfg.PercentageMissing,
		combos:      space.Combinations(),
		rng:         rng,
		trend:       Trend{Rand: rng},
		noise:       NoiseInjector{Rand: rng},
		outliers:    OutlierInjector{Rand: rng},
		missing:     MissingInjector{Rand: rng},
	}
}

// Total returns how many series the whole run will emit.
func (g *Generator) Total() int {
	return len(g.combos) * g.repeats
}

// Next computes the next (series, metadata) pair. It returns ErrDone when the
// run is exhausted; any other error aborts the run.
func (g *Generator) Next() (*models.Series, *models.SeriesMetadata, error) {
	if g.combo >= len(g.combos) {
		return nil, nil, ErrDone
	}
	combo := g.combos[g.combo]

	g.repeat++
	if g.repeat >= g.repeats {
		g.repeat = 0
		g.combo++
	}
	g.counter++

	dataSize := g.dataSizes[g.rng.Intn(len(g.dataSizes))]
	freq := g.frequencies[g.rng.Intn(len(g.frequencies))]

	series, err := g.synthesize(combo, dataSize, freq)
	if err != nil {
		return nil, nil, fmt.Errorf("series %d: %w", g.counter, err)
	}

	meta := &models.SeriesMetadata{
		ID:                 strconv.Itoa(g.counter) + ".csv",
		DataType:           combo.DataType,
		DailySeasonality:   combo.DailySeasonality,
		WeeklySeasonality:  combo.WeeklySeasonality,
		NoiseLevel:         combo.NoiseLevel,
		Trend:              combo.Trend,
		CyclicPeriod:       PresenceExist,
		DataSize:           dataSize,
		Frequency:          freq,
		PercentageOutliers: combo.PercentageOutliers,
		PercentageMissing:  g.pctMissing,
	}
	return series, meta, nil
}

// synthesize runs the full pipeline for one repeat: time axis, independent
// components, composition and rescale, then the corruptors in strict order
// (noise, outliers, missing values).
func (g *Generator) synthesize(combo Combination, dataSize int, freq string) (*models.Series, error) {
	end := g.startDate.Add(time.Duration(dataSize) * 24 * time.Hour)
	axis, err := BuildTimeAxis(g.startDate, end, freq)
	if err != nil {
		return nil, err
	}

	mode := CompositionMode(combo.DataType)
	components := [][]float64{
		g.daily.Synthesize(axis, combo.DailySeasonality, mode),
		g.weekly.Synthesize(axis, combo.WeeklySeasonality, mode),
		g.trend.Synthesize(axis, combo.Trend, mode),
		// The cycle component is always synthesized as present, whatever the
		// combination's drawn cyclic level says.
		g.cycle.Synthesize(axis, PresenceExist, mode),
	}

	values := NewComposer(mode).Compose(components...)
	values = g.noise.Apply(values, combo.NoiseLevel)
	values, anomaly := g.outliers.Apply(values, combo.PercentageOutliers)
	values = g.missing.Apply(values, g.pctMissing)

	return &models.Series{
		Values:     values,
		Timestamps: axis.Timestamps(),
		Anomaly:    anomaly,
	}, nil
}
