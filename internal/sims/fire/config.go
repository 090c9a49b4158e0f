package fire

import "strconv"

// Params holds the ignition and burn dynamics of a run. A Grid copies its
// Params at construction and never changes them.
//
// IgniteProbability is not clamped: values <= 0 stop fire from spreading and
// values >= 1 make every Alive cell next to a fire ignite. A BurnDurationLimit
// of 0 kills a burning cell on the first tick it is seen burning; burn timers
// are 32-bit, so New caps the limit at math.MaxUint32.
type Params struct {
	IgniteProbability float64 `yaml:"ignite_probability"`
	BurnDurationLimit int     `yaml:"burn_duration_limit"`
	InitialIgnitions  int     `yaml:"initial_ignitions"`
}

// Config controls the fire simulation dimensions and seed.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 120,
		Seed:   1337,
		Params: Params{
			IgniteProbability: 0.3,
			BurnDurationLimit: 10,
			InitialIgnitions:  3,
		},
	}
}

// normalized clamps negative counts to zero and non-positive dimensions to one.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Params.BurnDurationLimit < 0 {
		c.Params.BurnDurationLimit = 0
	}
	if c.Params.InitialIgnitions < 0 {
		c.Params.InitialIgnitions = 0
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base with the recognised keys in cfg. Malformed
// or out-of-range values are ignored.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["ignite_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.IgniteProbability = parsed
		}
	}
	if v, ok := cfg["burn_duration_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BurnDurationLimit = parsed
		}
	}
	if v, ok := cfg["initial_ignitions"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitialIgnitions = parsed
		}
	}
	return c
}
