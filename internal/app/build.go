package app

import (
	"fmt"
	"image/color"
	"os"

	"fire-ca/internal/core"
	"fire-ca/internal/sims/fire"

	"github.com/charmbracelet/log"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var monochrome = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Palette returns the sim's own palette, or black and white.
func Palette(sim core.Sim) []color.RGBA {
	if p, ok := sim.(paletteProvider); ok {
		return p.Palette()
	}
	return monochrome
}

// BuildSim constructs the sim named in cfg. The fire sim additionally honours
// -config, layering the YAML file under the flag overrides.
func BuildSim(cfg *Config) (core.Sim, error) {
	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}
	if cfg.Sim == "fire" && cfg.ConfigPath != "" {
		base, err := fire.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		return fire.NewWithConfig(fire.ApplyMap(base, overrides)), nil
	}
	if cfg.ConfigPath != "" {
		return nil, fmt.Errorf("sim %q does not accept -config", cfg.Sim)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	return factory(overrides), nil
}

// NewLogger builds the stderr logger used by the commands.
func NewLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fire-ca",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// LogStart records the settings of a freshly built sim.
func LogStart(logger *log.Logger, sim core.Sim) {
	size := sim.Size()
	kv := []interface{}{"sim", sim.Name(), "w", size.W, "h", size.H}
	if w, ok := sim.(*fire.World); ok {
		cfg := w.Config()
		kv = append(kv,
			"seed", cfg.Seed,
			"ignite_probability", cfg.Params.IgniteProbability,
			"burn_duration_limit", cfg.Params.BurnDurationLimit,
			"initial_ignitions", cfg.Params.InitialIgnitions,
		)
	}
	logger.Info("sim ready", kv...)
}
