package simulator

// Combination is one point in the configuration space: a chosen level per
// parameter axis. Series length and frequency are drawn per repeat, not here.
type Combination struct {
	DailySeasonality   string
	WeeklySeasonality  string
	NoiseLevel         string
	Trend              string
	CyclicPeriod       string
	PercentageOutliers float64
	DataType           string
}

// ConfigurationSpace is the cross product of all parameter axes.
type ConfigurationSpace struct {
	DailySeasonalityOptions   []string
	WeeklySeasonalityOptions  []string
	NoiseLevels               []string
	TrendLevels               []string
	CyclicPeriods             []string
	PercentageOutliersOptions []float64
	DataTypes                 []string
}

// Size returns the number of combinations in the space.
func (s *ConfigurationSpace) Size() int {
	return len(s.DailySeasonalityOptions) *
		len(s.WeeklySeasonalityOptions) *
		len(s.NoiseLevels) *
		len(s.TrendLevels) *
		len(s.CyclicPeriods) *
		len(s.PercentageOutliersOptions) *
		len(s.DataTypes)
}

// Combinations enumerates the cross product in axis-nesting order: daily,
// weekly, noise, trend, cycle, outlier percentage, data type.
func (s *ConfigurationSpace) Combinations() []Combination {
	out := make([]Combination, 0, s.Size())
	for _, daily := range s.DailySeasonalityOptions {
		for _, weekly := range s.WeeklySeasonalityOptions {
			for _, noise := range s.NoiseLevels {
				for _, trend := range s.TrendLevels {
					for _, cycle := range s.CyclicPeriods {
						for _, pctOutliers := range s.PercentageOutliersOptions {
							for _, dataType := range s.DataTypes {
								out = append(out, Combination{
									DailySeasonality:   daily,
									WeeklySeasonality:  weekly,
									NoiseLevel:         noise,
									Trend:              trend,
									CyclicPeriod:       cycle,
									PercentageOutliers: pctOutliers,
									DataType:           dataType,
								})
							}
						}
					}
				}
			}
		}
	}
	return out
}
