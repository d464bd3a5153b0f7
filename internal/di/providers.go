package di

import (
	"math/rand"
	"time"

	"TSForge/internal/simulator"
	"TSForge/pkg/config"
	"TSForge/pkg/logger"
	"TSForge/pkg/metrics"
	"TSForge/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideRand creates the run's random source. Seed 0 means time-based.
func ProvideRand(cfg *config.Config) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideGenerator creates the series generator.
func ProvideGenerator(cfg *config.Config, rng *rand.Rand) *simulator.Generator {
	return simulator.NewGenerator(cfg, rng)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, gen *simulator.Generator, rec *metrics.Recorder, log *logger.Logger) *server.App {
	return server.New(cfg, gen, rec, log)
}
