package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"TSForge/internal/domain/models"
	"TSForge/internal/simulator"
	"TSForge/internal/sink"
	"TSForge/pkg/config"
	"TSForge/pkg/logger"
	"TSForge/pkg/metrics"
)

// App drives one generation run: it pulls (series, metadata) pairs from the
// generator in strict sequence, writes each series through a sink, and writes
// the aggregate manifest at the end.
type App struct {
	cfg *config.Config
	gen *simulator.Generator
	rec *metrics.Recorder
	log *logger.Logger
}

// New creates the App with all dependencies.
func New(cfg *config.Config, gen *simulator.Generator, rec *metrics.Recorder, log *logger.Logger) *App {
	return &App{cfg: cfg, gen: gen, rec: rec, log: log}
}

// Run executes the batch run and blocks until it finishes or a signal
// cancels it. A cancelled run leaves partial output behind.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.log.Info("generation run started",
		logger.Int("series_total", a.gen.Total()),
		logger.String("output_dir", a.cfg.Output.Dir),
	)

	manifest := make([]*models.SeriesMetadata, 0, a.gen.Total())
	for {
		if err := ctx.Err(); err != nil {
			a.log.Warn("run cancelled", logger.Int("series_done", len(manifest)))
			return err
		}

		started := time.Now()
		series, meta, err := a.gen.Next()
		if errors.Is(err, simulator.ErrDone) {
			break
		}
		if err != nil {
			a.rec.RecordError("generate")
			a.log.Error("generation failed", logger.Error(err))
			return err
		}

		if err := a.writeSeries(series, meta); err != nil {
			a.rec.RecordError("sink")
			a.log.Error("series write failed", logger.String("id", meta.ID), logger.Error(err))
			return err
		}

		a.rec.RecordSeries(meta.DataType, series.Len(), time.Since(started))
		a.log.Debug("series generated",
			logger.String("id", meta.ID),
			logger.String("data_type", meta.DataType),
			logger.String("freq", meta.Frequency),
			logger.Int("points", series.Len()),
			logger.Int("anomalies", series.AnomalyCount()),
			logger.Int("missing", series.MissingCount()),
		)
		manifest = append(manifest, meta)
	}

	if err := a.writeManifest(manifest); err != nil {
		a.rec.RecordError("manifest")
		a.log.Error("manifest write failed", logger.Error(err))
		return err
	}

	a.log.Info("generation run finished", logger.Int("series", len(manifest)))
	return nil
}

func (a *App) writeSeries(series *models.Series, meta *models.SeriesMetadata) error {
	producer, err := sink.New(filepath.Join(a.cfg.Output.Dir, meta.ID))
	if err != nil {
		return err
	}
	return producer.ProduceSeries(series)
}

func (a *App) writeManifest(manifest []*models.SeriesMetadata) error {
	producer, err := sink.New(filepath.Join(a.cfg.Output.Dir, a.cfg.Output.Manifest))
	if err != nil {
		return err
	}
	return producer.ProduceManifest(manifest)
}
