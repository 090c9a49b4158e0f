package fire

import (
	"math"
	"strconv"

	"fire-ca/internal/core"
)

// Parameters describes the staged configuration (what the next Reset will
// use) and the live counters of the running grid.
func (w *World) Parameters() core.ParameterSnapshot {
	staged := w.staged
	counts := w.grid.Counts()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", staged.Width),
				intParam("h", "Height", staged.Height),
				int64Param("seed", "Seed", staged.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("ignite_probability", "Ignite probability", staged.Params.IgniteProbability),
				intParam("burn_duration_limit", "Burn duration", staged.Params.BurnDurationLimit),
				intParam("initial_ignitions", "Ignition points", staged.Params.InitialIgnitions),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", w.ticks),
				intParam("alive", "Alive", counts.Alive),
				intParam("burning", "Burning", counts.Burning),
				intParam("dead", "Dead", counts.Dead),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings the HUD may adjust. Changes apply on
// the next Reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "ignite_probability", Label: "Ignite prob", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "burn_duration_limit", Label: "Burn ticks", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
		{Key: "initial_ignitions", Label: "Ignitions", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter stages an integer setting for the next Reset.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "burn_duration_limit":
		if value < 0 {
			value = 0
		}
		w.staged.Params.BurnDurationLimit = value
	case "initial_ignitions":
		if value < 0 {
			value = 0
		}
		w.staged.Params.InitialIgnitions = value
	default:
		return false
	}
	return true
}

// SetFloatParameter stages a floating point setting for the next Reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "ignite_probability":
		w.staged.Params.IgniteProbability = math.Max(0, math.Min(1, value))
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
