package fire

import (
	"fmt"
	"math"
	"slices"

	"fire-ca/internal/core"
)

// Grid is the fire spread engine: a toroidal buffer of cells plus a per-cell
// count of ticks spent burning. It is not safe for concurrent use.
type Grid struct {
	torus  core.Torus
	params Params

	cells     []Cell
	cellsNext []Cell

	// timers[i] is only meaningful while cells[i] is Burning. It is never
	// reset, so a Dead cell keeps the value it died with.
	timers     []uint32
	timersNext []uint32
}

// maxBurnTimer is a variable so the conversion to int compiles on 32-bit
// platforms, where the cap is unreachable.
var maxBurnTimer uint64 = math.MaxUint32

// Counts tallies the cells in each state.
type Counts struct {
	Alive   int
	Burning int
	Dead    int
}

// New allocates a width×height grid with every cell Alive, then draws
// params.InitialIgnitions indices from rng and sets them Burning. Draws are
// independent, so the same cell may be picked more than once. A negative
// BurnDurationLimit becomes 0 and one past the timer range becomes
// math.MaxUint32. New panics if either dimension is not positive.
func New(width, height int, params Params, rng core.Source) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("fire: grid dimensions must be positive, got %dx%d", width, height))
	}
	if params.BurnDurationLimit < 0 {
		params.BurnDurationLimit = 0
	}
	if int64(params.BurnDurationLimit) > math.MaxUint32 {
		params.BurnDurationLimit = int(maxBurnTimer)
	}
	torus := core.NewTorus(width, height)
	total := torus.Len()
	g := &Grid{
		torus:      torus,
		params:     params,
		cells:      make([]Cell, total),
		cellsNext:  make([]Cell, total),
		timers:     make([]uint32, total),
		timersNext: make([]uint32, total),
	}
	for i := range g.cells {
		g.cells[i] = Alive
	}
	for i := 0; i < params.InitialIgnitions; i++ {
		g.cells[rng.IntN(total)] = Burning
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.torus.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.torus.H }

// Params returns the parameters the grid was built with.
func (g *Grid) Params() Params { return g.params }

// Index returns the row-major index of (row, col).
func (g *Grid) Index(row, col int) int { return g.torus.Index(row, col) }

// Cells exposes the current cell buffer. Callers must treat it as read-only;
// it is replaced, not updated, by Tick.
func (g *Grid) Cells() []Cell { return g.cells }

// BurnTimers exposes the per-cell burn counters, aligned with Cells.
func (g *Grid) BurnTimers() []uint32 { return g.timers }

// BurningNeighborCount returns how many of the eight toroidal neighbours of
// (row, col) are Burning. On grids one cell wide or tall, wrapped positions
// can land on the same cell (or on (row, col) itself) and each position is
// counted, so the result stays within [0, 8] but can exceed the number of
// distinct burning cells.
func (g *Grid) BurningNeighborCount(row, col int) int {
	count := 0
	for _, idx := range g.torus.Moore(row, col) {
		if g.cells[idx].IsBurning() {
			count++
		}
	}
	return count
}

// Tick advances the whole grid one step and reports whether the cell buffer
// came out unchanged. Burn timers still advance on such a tick, so the grid
// is only at a fixpoint when Tick reports true and nothing is Burning.
//
// Every decision reads the pre-tick cells and timers. Alive cells next to a
// fire draw once from rng and ignite when the draw is below
// IgniteProbability. Burning cells below the burn limit age by one tick;
// those at or past it die.
func (g *Grid) Tick(rng core.Source) bool {
	copy(g.cellsNext, g.cells)
	copy(g.timersNext, g.timers)

	limit := uint32(g.params.BurnDurationLimit)
	w, h := g.torus.W, g.torus.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := g.torus.Index(row, col)
			switch g.cells[idx] {
			case Alive:
				if g.BurningNeighborCount(row, col) == 0 {
					continue
				}
				if rng.Float64() < g.params.IgniteProbability {
					g.cellsNext[idx].ignite()
				}
			case Burning:
				if g.timers[idx] < limit {
					g.timersNext[idx]++
				} else {
					g.cellsNext[idx].extinguish()
				}
			}
		}
	}

	// Burn time keeps accruing even on a tick that changes no cell.
	g.timers, g.timersNext = g.timersNext, g.timers
	if slices.Equal(g.cells, g.cellsNext) {
		return true
	}
	g.cells, g.cellsNext = g.cellsNext, g.cells
	return false
}

// Counts tallies the current cell states.
func (g *Grid) Counts() Counts {
	var c Counts
	for _, cell := range g.cells {
		switch cell {
		case Alive:
			c.Alive++
		case Burning:
			c.Burning++
		default:
			c.Dead++
		}
	}
	return c
}

// Burning reports whether any cell is still on fire.
func (g *Grid) Burning() bool {
	return slices.Contains(g.cells, Burning)
}
