package qoracle

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// MaxPrecision is the most decimal digits a float64 can meaningfully carry.
const MaxPrecision = 17

type Config struct {
	Precision int
	PadLabels bool
	ChartPath string
	Verbose   bool
}

func NewConfig() *Config {
	return &Config{
		Precision: 4,
	}
}

/*
LoadConfig reads a Config out of a viper instance. Keys missing from v keep
their NewConfig defaults, so an empty viper gives the plain demonstration.
Values that do not parse as their field type are an error, not a zero.
*/
func LoadConfig(v *viper.Viper) (*Config, error) {
	var err error
	config := NewConfig()

	if v.IsSet("precision") {
		if config.Precision, err = cast.ToIntE(v.Get("precision")); err != nil {
			return nil, fmt.Errorf("precision: %w", err)
		}
	}
	if config.PadLabels, err = cast.ToBoolE(v.Get("pad-labels")); err != nil {
		return nil, fmt.Errorf("pad-labels: %w", err)
	}
	if config.ChartPath, err = cast.ToStringE(v.Get("chart")); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	if config.Verbose, err = cast.ToBoolE(v.Get("verbose")); err != nil {
		return nil, fmt.Errorf("verbose: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the printer cannot honour.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range [0, %d]", c.Precision, MaxPrecision)
	}
	return nil
}
