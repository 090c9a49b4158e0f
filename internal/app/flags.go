package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	Width      int
	Height     int
	ConfigPath string
	LogLevel   string
	Sets       KVList
}

// NewConfig returns a Config populated with sensible defaults. Zero Width and
// Height keep the sim's own dimensions.
func NewConfig() *Config {
	return &Config{Sim: "fire", Scale: 4, TPS: 20, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 keeps the configured width)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 keeps the configured height)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with simulation settings")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// Overrides merges the dedicated flags and -set pairs into a sim config map.
// -set pairs win over the dedicated flags.
func (c *Config) Overrides() (map[string]string, error) {
	out := map[string]string{}
	if c.Width > 0 {
		out["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		out["h"] = strconv.Itoa(c.Height)
	}
	if c.Seed != 0 {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	for _, kv := range c.Sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid -set %q: want key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
