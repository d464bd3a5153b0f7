package sink

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TSForge/internal/domain/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNew(t *testing.T) {
	t.Run("csv path", func(t *testing.T) {
		p, err := New("out/1.csv")
		require.NoError(t, err)
		assert.IsType(t, &CSVProducer{}, p)
	})

	t.Run("unsupported sink is fatal", func(t *testing.T) {
		_, err := New("out/1.parquet")
		assert.ErrorIs(t, err, ErrUnsupportedSink)
	})
}

func TestCSVProducerSeries(t *testing.T) {
	start := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	series := &models.Series{
		Values:     []float64{0.5, math.NaN(), -1},
		Timestamps: []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)},
		Anomaly:    []bool{false, false, true},
	}

	path := filepath.Join(t.TempDir(), "nested", "1.csv")
	p, err := New(path)
	require.NoError(t, err)
	require.NoError(t, p.ProduceSeries(series))

	rows := readCSV(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"value", "timestamp", "anomaly"}, rows[0])
	assert.Equal(t, []string{"0.5", "2021-07-01T00:00:00Z", "false"}, rows[1])
	// NaN serializes as an empty cell.
	assert.Equal(t, "", rows[2][0])
	assert.Equal(t, []string{"-1", "2021-07-03T00:00:00Z", "true"}, rows[3])
}

func TestCSVProducerManifest(t *testing.T) {
	records := []*models.SeriesMetadata{
		{
			ID:                 "1.csv",
			DataType:           "additive",
			DailySeasonality:   "exist",
			WeeklySeasonality:  "no",
			NoiseLevel:         "small",
			Trend:              "no",
			CyclicPeriod:       "exist",
			DataSize:           30,
			Frequency:          "1D",
			PercentageOutliers: 0.05,
			PercentageMissing:  0.05,
		},
		{ID: "2.csv", DataType: "multiplicative", DataSize: 60, Frequency: "6H"},
	}

	path := filepath.Join(t.TempDir(), "meta_data.csv")
	p, err := New(path)
	require.NoError(t, err)
	require.NoError(t, p.ProduceManifest(records))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, []string{
		"1.csv", "additive", "exist", "no", "small", "no", "exist",
		"30", "1D", "0.05", "0.05",
	}, rows[1])
	assert.Equal(t, "2.csv", rows[2][0])
	assert.Equal(t, "60", rows[2][7])
}
