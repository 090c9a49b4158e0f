package fire

import "image/color"

const (
	displayDead    = 0
	displayAlive   = 1
	displayBurning = 2

	// HeatLevels is the number of palette shades used for burning cells.
	HeatLevels = 8
)

var firePalette = buildFirePalette()

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return firePalette
}

// Palette returns the shared fire palette without needing a World.
func Palette() []color.RGBA {
	return firePalette
}

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, displayBurning+HeatLevels)
	palette[displayDead] = color.RGBA{R: 38, G: 34, B: 32, A: 255}
	palette[displayAlive] = color.RGBA{R: 46, G: 122, B: 52, A: 255}

	fresh := color.NRGBA{R: 255, G: 236, B: 150, A: 255}
	spent := color.NRGBA{R: 150, G: 28, B: 10, A: 255}
	for i := 0; i < HeatLevels; i++ {
		t := float64(i) / float64(HeatLevels-1)
		c := blendColors(fresh, spent, t)
		palette[displayBurning+i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return palette
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// HeatLevel maps a burn timer onto [0, HeatLevels) relative to the burn
// limit, so a fresh fire is level 0 and a fire about to die is the last one.
func HeatLevel(timer uint32, limit int) int {
	if limit < 0 {
		limit = 0
	}
	level := int(uint64(timer) * HeatLevels / uint64(limit+1))
	if level >= HeatLevels {
		level = HeatLevels - 1
	}
	return level
}

func encodeDisplayValue(cell Cell, timer uint32, limit int) uint8 {
	switch cell {
	case Alive:
		return displayAlive
	case Burning:
		return uint8(displayBurning + HeatLevel(timer, limit))
	default:
		return displayDead
	}
}

// EncodeDisplay writes palette indices for the grid into dst, which must be
// at least as long as the grid.
func EncodeDisplay(dst []uint8, g *Grid) {
	cells := g.Cells()
	timers := g.BurnTimers()
	limit := g.Params().BurnDurationLimit
	for i, c := range cells {
		dst[i] = encodeDisplayValue(c, timers[i], limit)
	}
}
