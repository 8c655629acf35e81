// Package config holds the settings shared by the gma commands.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all command settings.
type Config struct {
	Format  FormatConfig  `yaml:"format"`
	Plot    PlotConfig    `yaml:"plot"`
	Julia   JuliaConfig   `yaml:"julia"`
	Logging LoggingConfig `yaml:"logging"`
}

// FormatConfig selects how gmacalc prints coordinates. Style is one of
// plain, fixed, exponential or precision; Digits is passed to the
// matching formatter and ignored by plain.
type FormatConfig struct {
	Style  string `yaml:"style"`
	Digits int    `yaml:"digits"`
}

// PlotConfig drives gmaplot.
type PlotConfig struct {
	Size   float64 `yaml:"size"` // inches, square
	Extent float64 `yaml:"extent"`
	Steps  int     `yaml:"steps"`
	Output string  `yaml:"output"`
}

// JuliaConfig drives gmajulia.
type JuliaConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Zoom        float64    `yaml:"zoom"`
	MaxIter     int        `yaml:"max_iter"`
	C           [2]float64 `yaml:"c"`
	Supersample int        `yaml:"supersample"`
	Denoise     bool       `yaml:"denoise"`
	Output      string     `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

var styles = map[string]bool{"plain": true, "fixed": true, "exponential": true, "precision": true}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		Format: FormatConfig{Style: "plain", Digits: 4},
		Plot: PlotConfig{
			Size:   8,
			Extent: 5,
			Steps:  8,
			Output: "rotors.png",
		},
		Julia: JuliaConfig{
			Width:       400,
			Height:      300,
			Zoom:        0.007,
			MaxIter:     60,
			C:           [2]float64{-0.70176, -0.3842},
			Supersample: 2,
			Output:      "julia.png",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid with the yaml file at path. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config from %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate reports settings no command can run with.
func (c *Config) Validate() error {
	switch {
	case !styles[c.Format.Style]:
		return errors.Errorf("unknown format style %q", c.Format.Style)
	case c.Format.Digits < 0:
		return errors.Errorf("format digits %d is negative", c.Format.Digits)
	case c.Plot.Size <= 0 || c.Plot.Extent <= 0:
		return errors.New("plot size and extent must be positive")
	case c.Julia.Width <= 0 || c.Julia.Height <= 0:
		return errors.Errorf("julia size %dx%d is empty", c.Julia.Width, c.Julia.Height)
	case c.Julia.MaxIter <= 0 || c.Julia.MaxIter > 255:
		return errors.Errorf("julia max_iter %d outside 1..255", c.Julia.MaxIter)
	case c.Julia.Supersample < 1:
		return errors.Errorf("julia supersample %d is less than 1", c.Julia.Supersample)
	}
	return nil
}

// Save writes c as yaml to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
