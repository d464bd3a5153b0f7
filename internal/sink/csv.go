package sink

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"TSForge/internal/domain/models"
)

// CSVProducer writes one flat CSV file per call, creating parent directories
// as needed.
type CSVProducer struct {
	Path string
}

// ProduceSeries writes value,timestamp,anomaly rows. Missing values (NaN)
// are written as empty cells; timestamps are RFC3339.
func (p *CSVProducer) ProduceSeries(s *models.Series) error {
	rows := make([][]string, 0, s.Len()+1)
	rows = append(rows, []string{"value", "timestamp", "anomaly"})
	for i := 0; i < s.Len(); i++ {
		rows = append(rows, []string{
			formatValue(s.Values[i]),
			s.Timestamps[i].Format(time.RFC3339),
			strconv.FormatBool(s.Anomaly[i]),
		})
	}
	return p.write(rows)
}

// ProduceManifest writes one row per metadata record.
func (p *CSVProducer) ProduceManifest(records []*models.SeriesMetadata) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{
		"id", "data_type", "daily_seasonality", "weekly_seasonality",
		"noise_level", "trend", "cyclic_period", "data_size", "freq",
		"percentage_outliers", "percentage_missing",
	})
	for _, md := range records {
		rows = append(rows, []string{
			md.ID,
			md.DataType,
			md.DailySeasonality,
			md.WeeklySeasonality,
			md.NoiseLevel,
			md.Trend,
			md.CyclicPeriod,
			strconv.Itoa(md.DataSize),
			md.Frequency,
			strconv.FormatFloat(md.PercentageOutliers, 'g', -1, 64),
			strconv.FormatFloat(md.PercentageMissing, 'g', -1, 64),
		})
	}
	return p.write(rows)
}

func (p *CSVProducer) write(rows [][]string) error {
	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sink dir: %w", err)
		}
	}
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("create sink file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close sink file: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
