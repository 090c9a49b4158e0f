package ui

import (
	"fmt"
	"strings"

	"fire-ca/internal/core"
)

// Status is the driver state the overlay reports alongside the sim's own
// counters.
type Status struct {
	Paused   bool
	Finished bool
	TPS      int
}

// State names the run state for display.
func (s Status) State() string {
	switch {
	case s.Finished:
		return "finished"
	case s.Paused:
		return "paused"
	default:
		return "running"
	}
}

// statusKeys are the live counters shown on the overlay, in order.
var statusKeys = []string{"ticks", "alive", "burning", "dead"}

// StatusLines formats the overlay text for sim.
func StatusLines(sim core.Sim, st Status) []string {
	lines := []string{fmt.Sprintf("%s [%s] %d tps", sim.Name(), st.State(), st.TPS)}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	snap := provider.Parameters()
	var parts []string
	for _, key := range statusKeys {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(p.Label), p.Value))
		}
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, "  "))
	}
	return lines
}

// HelpLines lists the keyboard controls.
func HelpLines() []string {
	return []string{
		"space pause   n step   enter resume",
		"r reset   s reseed   +/- speed",
		"h help   q quit",
	}
}
