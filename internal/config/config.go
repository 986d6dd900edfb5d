package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-anim/anim/optimize"
	"github.com/cwbudde/algo-anim/anim/sample"
)

//go:embed sample_config.toml
var sampleConfig string

// Duplicates toggles the duplicate reducer.
type Duplicates struct {
	Enabled bool `toml:"enabled"`
}

// SimilarPoints configures the similar-point reducer.
type SimilarPoints struct {
	Enabled                 bool    `toml:"enabled"`
	DifferenceThreshold     float64 `toml:"difference_threshold"`
	TimeDifferenceThreshold float64 `toml:"time_difference_threshold"`
}

// Slopes configures the slope-similarity reducer.
type Slopes struct {
	Enabled                       bool    `toml:"enabled"`
	DifferenceThreshold           float64 `toml:"difference_threshold"`
	TimeDifferenceThreshold       float64 `toml:"time_difference_threshold"`
	YInterceptDifferenceThreshold float64 `toml:"y_intercept_difference_threshold"`
}

// Optimize mirrors optimize.Settings.
type Optimize struct {
	Active        bool          `toml:"active"`
	Passes        int           `toml:"passes"`
	Duplicates    Duplicates    `toml:"duplicates"`
	SimilarPoints SimilarPoints `toml:"similar_points"`
	Slopes        Slopes        `toml:"slopes"`
}

// Sample holds evaluation defaults.
type Sample struct {
	Kind          string `toml:"kind"`
	ReportSamples int    `toml:"report_samples"`
}

// Config is the trackopt configuration document.
type Config struct {
	Optimize Optimize `toml:"optimize"`
	Sample   Sample   `toml:"sample"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	s := optimize.DefaultSettings()
	return Config{
		Optimize: Optimize{
			Active:     s.Active,
			Passes:     s.Passes,
			Duplicates: Duplicates{Enabled: s.Duplicates.Enabled},
			SimilarPoints: SimilarPoints{
				Enabled:                 s.SimilarPoints.Enabled,
				DifferenceThreshold:     s.SimilarPoints.DifferenceThreshold,
				TimeDifferenceThreshold: s.SimilarPoints.TimeDifferenceThreshold,
			},
			Slopes: Slopes{
				Enabled:                       s.Slopes.Enabled,
				DifferenceThreshold:           s.Slopes.DifferenceThreshold,
				TimeDifferenceThreshold:       s.Slopes.TimeDifferenceThreshold,
				YInterceptDifferenceThreshold: s.Slopes.YInterceptDifferenceThreshold,
			},
		},
		Sample: Sample{
			Kind:          sample.KindGeneric.String(),
			ReportSamples: 200,
		},
	}
}

// Load reads and validates the configuration at path. A missing file yields
// Default; exists reports whether the file was found.
func Load(path string) (*Config, bool, error) {
	c := Default()
	exists := false

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, false, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			exists = true

			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&c); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	c.Sample.Kind = strings.TrimSpace(c.Sample.Kind)
	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	return &c, exists, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	if c.Sample.ReportSamples < 2 {
		return errors.New("sample.report_samples must be at least 2")
	}
	if c.Sample.Kind != "" && sample.ParseKind(c.Sample.Kind) == sample.KindGeneric && c.Sample.Kind != sample.KindGeneric.String() {
		return fmt.Errorf("sample.kind %q is not one of generic, position, rotation, color", c.Sample.Kind)
	}
	return nil
}

// Settings converts the [optimize] section into validated optimizer settings.
func (c *Config) Settings() (optimize.Settings, error) {
	o := c.Optimize
	return optimize.NewSettings(
		optimize.WithActive(o.Active),
		optimize.WithPasses(o.Passes),
		optimize.WithDuplicates(o.Duplicates.Enabled),
		optimize.WithSimilarPoints(o.SimilarPoints.Enabled),
		optimize.WithSimilarPointThresholds(o.SimilarPoints.DifferenceThreshold, o.SimilarPoints.TimeDifferenceThreshold),
		optimize.WithSlopes(o.Slopes.Enabled),
		optimize.WithSlopeThresholds(o.Slopes.DifferenceThreshold, o.Slopes.TimeDifferenceThreshold, o.Slopes.YInterceptDifferenceThreshold),
	)
}

// Kind returns the configured default property kind.
func (c *Config) Kind() sample.Kind {
	return sample.ParseKind(c.Sample.Kind)
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path, creating parent
// directories. An existing file is not overwritten.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(sampleConfig); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
