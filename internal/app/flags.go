package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset       string
	PresetFile   string
	Describe     string
	InterpretURL string
	Seed         int64
	Cycle        time.Duration
	PanelWidth   int
	TPS          int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:       42,
		Cycle:      4 * time.Minute,
		PanelWidth: 230,
		TPS:        60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "start from a named weather preset")
	fs.StringVar(&c.PresetFile, "presets", c.PresetFile, "YAML file with additional weather presets")
	fs.StringVar(&c.Describe, "describe", c.Describe, "natural-language weather description to interpret at startup")
	fs.StringVar(&c.InterpretURL, "interpret-url", c.InterpretURL, "base URL of the interpretation service")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle randomness")
	fs.DurationVar(&c.Cycle, "cycle", c.Cycle, "wall-clock duration of a full day/night cycle")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "width of the control panel in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
