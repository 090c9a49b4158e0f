package fire

import (
	"math/rand/v2"

	"fire-ca/internal/core"
)

// World drives a Grid for display: it owns the random source, keeps a
// palette-indexed display buffer in sync and remembers when the run settled.
type World struct {
	cfg    Config
	staged Config

	grid    *Grid
	rng     *rand.Rand
	display []uint8

	ticks    int
	finished bool
}

// NewWorld returns a fire World with the provided dimensions using defaults.
func NewWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options, already
// reset with the configured seed.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{cfg: cfg, staged: cfg}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "fire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying engine.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the configuration of the running grid.
func (w *World) Config() Config { return w.cfg }

// Ticks reports how many steps ran since the last reset, not counting the
// one that finished the run.
func (w *World) Ticks() int { return w.ticks }

// Finished reports whether the grid reached a fixpoint: a stable tick with no
// cell left burning.
func (w *World) Finished() bool { return w.finished }

// Reset rebuilds the grid from the staged configuration. A zero seed reuses
// the configured one.
func (w *World) Reset(seed int64) {
	w.cfg = w.staged
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.grid = New(w.cfg.Width, w.cfg.Height, w.cfg.Params, w.rng)
	if len(w.display) != w.cfg.Width*w.cfg.Height {
		w.display = make([]uint8, w.cfg.Width*w.cfg.Height)
	}
	w.ticks = 0
	w.finished = false
	EncodeDisplay(w.display, w.grid)
}

// Step ticks the grid once. A stable tick only finishes the run once nothing
// burns, since burn timers keep advancing while the cells look unchanged.
// After that Step stops touching the grid and keeps returning true until the
// next Reset.
func (w *World) Step() bool {
	if w.finished {
		return true
	}
	if w.grid.Tick(w.rng) && !w.grid.Burning() {
		w.finished = true
	} else {
		w.ticks++
	}
	EncodeDisplay(w.display, w.grid)
	return w.finished
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
