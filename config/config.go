// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FormatFASTA writes the assembly as a single FASTA record
	FormatFASTA = "fasta"

	// FormatJSON writes the assembly, its chain and overlaps as JSON
	FormatJSON = "json"

	// FormatYAML is the same document as FormatJSON, as YAML
	FormatYAML = "yaml"

	// EnvPrefix is the prefix of environment variables read into settings,
	// ex: STITCH_WORKERS=4
	EnvPrefix = "stitch"

	// SettingsName is the base name of the optional settings file in $HOME
	SettingsName = ".stitch"

	// DefaultName is the record name of the assembly when none is set
	DefaultName = "assembly"
)

func init() {
	viper.SetDefault("workers", 0)
	viper.SetDefault("format", FormatFASTA)
	viper.SetDefault("line-width", 0)
	viper.SetDefault("name", DefaultName)
	viper.SetDefault("verbose", false)
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Workers is the number of goroutines used when comparing fragment pairs.
	// Zero means one per CPU
	Workers int `mapstructure:"workers"`

	// Format of the written assembly
	Format string `mapstructure:"format"`

	// LineWidth is the number of symbols per line of FASTA output.
	// Zero writes the sequence on one line
	LineWidth int `mapstructure:"line-width"`

	// Name of the assembled record in the output
	Name string `mapstructure:"name"`

	// Verbose turns on debug logging to stderr
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (the settings file, environment and command line arguments)
func New() (*Config, error) {
	return From(viper.GetViper())
}

// From unmarshals a Config from the passed viper instance, fills
// in defaults and validates the result
func From(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = FormatFASTA
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Format:  FormatFASTA,
		Name:    DefaultName,
	}
}

// Validate checks that each setting is in range
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	if c.LineWidth < 0 {
		return fmt.Errorf("line-width must not be negative, got %d", c.LineWidth)
	}

	switch c.Format {
	case FormatFASTA, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q, expected %s, %s or %s", c.Format, FormatFASTA, FormatJSON, FormatYAML)
	}

	return nil
}
