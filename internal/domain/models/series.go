package models

import (
	"math"
	"time"
)

// Series is one generated time series: three parallel slices of equal length.
// A NaN value marks a missing observation; Anomaly marks injected outliers.
type Series struct {
	Values     []float64
	Timestamps []time.Time
	Anomaly    []bool
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// MissingCount returns how many values are NaN.
func (s *Series) MissingCount() int {
	n := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// AnomalyCount returns how many points carry the anomaly flag.
func (s *Series) AnomalyCount() int {
	n := 0
	for _, a := range s.Anomaly {
		if a {
			n++
		}
	}
	return n
}

// SeriesMetadata describes the recipe that produced one Series. The set of all
// records for a run forms the dataset manifest.
type SeriesMetadata struct {
	ID                 string
	DataType           string
	DailySeasonality   string
	WeeklySeasonality  string
	NoiseLevel         string
	Trend              string
	CyclicPeriod       string
	DataSize           int
	Frequency          string
	PercentageOutliers float64
	PercentageMissing  float64
}
