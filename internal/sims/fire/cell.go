package fire

// Cell is the fire status of a single grid location.
type Cell uint8

const (
	// Dead cells have burnt out. Nothing leaves this state.
	Dead Cell = iota
	// Burning cells spread fire to Alive neighbours.
	Burning
	// Alive cells are unburnt fuel.
	Alive
)

// IsBurning reports whether the cell counts towards a neighbour's fire count.
func (c Cell) IsBurning() bool { return c == Burning }

// ignite moves Alive to Burning and leaves every other state untouched.
func (c *Cell) ignite() {
	if *c == Alive {
		*c = Burning
	}
}

// extinguish moves Burning to Dead and leaves every other state untouched.
func (c *Cell) extinguish() {
	if *c == Burning {
		*c = Dead
	}
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "dead"
	case Burning:
		return "burning"
	case Alive:
		return "alive"
	default:
		return "invalid"
	}
}
