//go:build !ebiten

package app

import (
	"errors"

	"fire-ca/internal/core"

	"github.com/charmbracelet/log"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

// ErrNoGUI reports that the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("app: GUI support requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(core.Sim, *Config, *log.Logger) *Game {
	panic(ErrNoGUI.Error())
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return ErrNoGUI
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
