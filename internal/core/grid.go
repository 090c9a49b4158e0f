package core

import "fmt"

// Torus describes a W×H grid whose edges wrap in both directions. Indices are
// row-major: row*W + col.
type Torus struct {
	W, H int
}

// NewTorus validates the dimensions and returns the geometry. Zero or negative
// sizes have no meaningful wraparound, so they panic.
func NewTorus(w, h int) Torus {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid torus dimensions %dx%d", w, h))
	}
	return Torus{W: w, H: h}
}

// Len returns the number of cells.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for (row, col).
func (t Torus) Index(row, col int) int { return row*t.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(row, col int) (int, int) {
	row = (row%t.H + t.H) % t.H
	col = (col%t.W + t.W) % t.W
	return row, col
}

// Moore returns the linear indices of the eight neighbours of (row, col) in
// the order NW, N, NE, W, E, SW, S, SE. On grids one cell wide or tall some
// positions resolve to the same index, or to (row, col) itself; they are
// reported once per position rather than deduplicated.
func (t Torus) Moore(row, col int) [8]int {
	north := (row + t.H - 1) % t.H
	south := (row + 1) % t.H
	west := (col + t.W - 1) % t.W
	east := (col + 1) % t.W
	return [8]int{
		t.Index(north, west), t.Index(north, col), t.Index(north, east),
		t.Index(row, west), t.Index(row, east),
		t.Index(south, west), t.Index(south, col), t.Index(south, east),
	}
}
