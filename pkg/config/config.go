package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"TSForge/pkg/util"
)

// ErrUnsupportedSource indicates a configuration source the factory cannot
// dispatch on.
var ErrUnsupportedSource = errors.New("unsupported configuration source")

var validate = validator.New()

// Config holds the parameter axes and run settings for one generation run.
// The axis keys are required; missing keys are a fatal configuration error.
type Config struct {
	StartDate                 time.Time `yaml:"start_date" json:"start_date" validate:"required"`
	Frequencies               []string  `yaml:"frequencies" json:"frequencies" validate:"required,min=1"`
	DailySeasonalityOptions   []string  `yaml:"daily_seasonality_options" json:"daily_seasonality_options" validate:"required,min=1"`
	WeeklySeasonalityOptions  []string  `yaml:"weekly_seasonality_options" json:"weekly_seasonality_options" validate:"required,min=1"`
	NoiseLevels               []string  `yaml:"noise_levels" json:"noise_levels" validate:"required,min=1"`
	TrendLevels               []string  `yaml:"trend_levels" json:"trend_levels" validate:"required,min=1"`
	CyclicPeriods             []string  `yaml:"cyclic_periods" json:"cyclic_periods" validate:"required,min=1"`
	DataTypes                 []string  `yaml:"data_types" json:"data_types" validate:"required,min=1,dive,oneof=additive multiplicative"`
	PercentageOutliersOptions []float64 `yaml:"percentage_outliers_options" json:"percentage_outliers_options" validate:"required,min=1"`
	DataSizes                 []int     `yaml:"data_sizes" json:"data_sizes" validate:"required,min=1,dive,gt=0"`

	PercentageMissing float64 `yaml:"percentage_missing" json:"percentage_missing" default:"0.05"`
	Repeats           int     `yaml:"repeats" json:"repeats" default:"16"`
	Seed              int64   `yaml:"seed" json:"seed"`

	Output struct {
		Dir      string `yaml:"dir" json:"dir" default:"sample_datasets"`
		Manifest string `yaml:"manifest" json:"manifest" default:"meta_data.csv"`
	} `yaml:"output" json:"output"`

	Logging struct {
		Level  string `yaml:"level" json:"level" default:"info"`
		Format string `yaml:"format" json:"format" default:"console"`
		Output string `yaml:"output" json:"output" default:"stdout"`
	} `yaml:"logging" json:"logging"`
}

// Source loads a Config from one backing store. Variants: Yaml, Json,
// Database (ClickHouse).
type Source interface {
	Load() (*Config, error)
}

// Open dispatches on the source string: *.yml/*.yaml, *.json, or a
// clickhouse:// DSN. Anything else fails with ErrUnsupportedSource.
func Open(source string) (Source, error) {
	switch {
	case strings.HasSuffix(source, ".yml"), strings.HasSuffix(source, ".yaml"):
		return &YamlSource{Path: source}, nil
	case strings.HasSuffix(source, ".json"):
		return &JsonSource{Path: source}, nil
	case strings.HasPrefix(source, "clickhouse://"):
		return &DatabaseSource{DSN: source}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, source)
	}
}

// finalize applies defaults and validates required keys. Order is always
// decode, defaults, validate.
func finalize(c *Config) (*Config, error) {
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// YamlSource reads the config from a YAML file.
type YamlSource struct {
	Path string
}

func (s *YamlSource) Load() (*Config, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finalize(&c)
}

// JsonSource reads the config from a JSON file. start_date is accepted as a
// plain YYYY-MM-DD date as well as RFC3339.
type JsonSource struct {
	Path string
}

func (s *JsonSource) Load() (*Config, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return decodeJSON(b)
}

func decodeJSON(b []byte) (*Config, error) {
	var raw struct {
		Config
		StartDate string `json:"start_date"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if raw.StartDate != "" {
		t, ok := util.ParseDate(raw.StartDate)
		if !ok {
			return nil, fmt.Errorf("parse config: invalid start_date %q", raw.StartDate)
		}
		raw.Config.StartDate = t
	}
	return finalize(&raw.Config)
}
