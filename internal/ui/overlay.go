//go:build ebiten

package ui

import (
	"image/color"

	"fire-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const overlayLineHeight = 16

// Overlay draws run status and key help on top of the simulation view.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHelp bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help panel.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	lines := StatusLines(o.sim, st)
	if o.showHelp {
		lines = append(lines, HelpLines()...)
	}
	o.drawBackdrop(screen, len(lines))
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, 2+i*overlayLineHeight)
	}
}

func (o *Overlay) drawBackdrop(screen *ebiten.Image, lines int) {
	size := o.sim.Size()
	w := size.W * o.scale
	if w <= 0 || lines == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(lines*overlayLineHeight+4))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 150})
	screen.DrawImage(o.pixel, op)
}
