package sink

import (
	"errors"
	"fmt"
	"strings"

	"TSForge/internal/domain/models"
)

// ErrUnsupportedSink indicates a sink path whose format is not recognized.
var ErrUnsupportedSink = errors.New("unsupported sink")

// Producer persists generated artifacts as tabular rows. One ProduceSeries
// call per generated series, plus one ProduceManifest call per run.
type Producer interface {
	ProduceSeries(s *models.Series) error
	ProduceManifest(records []*models.SeriesMetadata) error
}

// New dispatches on the sink path extension. Only CSV is recognized.
func New(path string) (Producer, error) {
	if strings.HasSuffix(path, ".csv") {
		return &CSVProducer{Path: path}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedSink, path)
}
