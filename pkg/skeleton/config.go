package skeleton

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	skerrors "github.com/go-drift/skeleton/pkg/errors"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "skeleton.yaml"

// Default sweep parameters.
const (
	DefaultSweepWidth      = 0.17
	DefaultFirstStopOffset = 0.10
	DefaultSweepDuration   = 850 * time.Millisecond
)

// Config holds the sweep parameters shared by every loader of a registry.
type Config struct {
	// SweepWidth is the fraction of the node width taken by the bright band.
	SweepWidth float64
	// FirstStopOffset shifts the trailing edge stop at the end of a loop.
	FirstStopOffset float64
	// Duration is the time for one sweep across the node.
	Duration time.Duration
}

// DefaultConfig returns the default sweep parameters.
func DefaultConfig() Config {
	return Config{
		SweepWidth:      DefaultSweepWidth,
		FirstStopOffset: DefaultFirstStopOffset,
		Duration:        DefaultSweepDuration,
	}
}

// Validate reports whether the configuration yields gradient stops that
// stay in non-decreasing order for the whole animation, which requires
// 0 <= FirstStopOffset <= SweepWidth <= 1, and a positive duration.
func (c Config) Validate() error {
	switch {
	case c.SweepWidth < 0 || c.SweepWidth > 1:
		return configError(fmt.Errorf("sweep width %v outside [0, 1]", c.SweepWidth))
	case c.FirstStopOffset < 0:
		return configError(fmt.Errorf("first stop offset %v is negative", c.FirstStopOffset))
	case c.FirstStopOffset > c.SweepWidth:
		return configError(fmt.Errorf("first stop offset %v exceeds sweep width %v", c.FirstStopOffset, c.SweepWidth))
	case c.Duration <= 0:
		return configError(fmt.Errorf("sweep duration %v must be positive", c.Duration))
	}
	return nil
}

func configError(err error) error {
	return &skerrors.LoaderError{Op: "skeleton.Config.Validate", Kind: skerrors.KindConfig, Err: err}
}

// fileConfig mirrors skeleton.yaml.
type fileConfig struct {
	Sweep struct {
		Width     *float64 `yaml:"width"`
		FirstStop *float64 `yaml:"first_stop"`
		Duration  string   `yaml:"duration"`
	} `yaml:"sweep"`
}

// LoadConfigOptional reads skeleton.yaml from dir if present. A missing file
// yields DefaultConfig.
func LoadConfigOptional(dir string) (Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadConfig(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadConfig reads a configuration file. Fields that are absent keep their
// defaults. The result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &skerrors.LoaderError{Op: "skeleton.LoadConfig", Kind: skerrors.KindConfig, Path: path, Err: err}
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes YAML configuration data. path is only used in errors.
func ParseConfig(data []byte, path string) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, &skerrors.LoaderError{Op: "skeleton.ParseConfig", Kind: skerrors.KindParsing, Path: path, Err: err}
	}

	cfg := DefaultConfig()
	if fc.Sweep.Width != nil {
		cfg.SweepWidth = *fc.Sweep.Width
	}
	if fc.Sweep.FirstStop != nil {
		cfg.FirstStopOffset = *fc.Sweep.FirstStop
	}
	if d := strings.TrimSpace(fc.Sweep.Duration); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return Config{}, &skerrors.LoaderError{
				Op:   "skeleton.ParseConfig",
				Kind: skerrors.KindParsing,
				Path: path,
				Err:  &skerrors.ParseError{Field: "sweep.duration", DataType: "duration", Got: d},
			}
		}
		cfg.Duration = parsed
	}
	if err := cfg.Validate(); err != nil {
		var le *skerrors.LoaderError
		if errors.As(err, &le) {
			le.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}
