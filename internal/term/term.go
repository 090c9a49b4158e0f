// Package term draws a simulation in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"fire-ca/internal/core"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// Options controls the terminal driver.
type Options struct {
	TPS int
	// ExitOnFinish makes Run return once the sim reports it has settled.
	ExitOnFinish bool
}

// Driver renders a sim two grid rows per terminal row with upper half-block
// glyphs, and steps it on a fixed clock.
type Driver struct {
	screen  tcell.Screen
	sim     core.Sim
	seed    int64
	palette []tcell.Color
	clock   *core.FixedStep
	opts    Options
	logger  *log.Logger

	paused   bool
	tickOnce bool
	finished bool

	// pollDone closes when the event reader started by Run has exited. The
	// reader stays parked in PollEvent until the next event or Fini.
	pollDone chan struct{}
}

// New constructs a Driver. The screen must already be initialised; Run does
// not call Fini.
func New(screen tcell.Screen, sim core.Sim, palette []color.RGBA, seed int64, opts Options, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	colors := make([]tcell.Color, len(palette))
	for i, c := range palette {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &Driver{
		screen:  screen,
		sim:     sim,
		seed:    seed,
		palette: colors,
		clock:   core.NewFixedStep(opts.TPS),
		opts:    opts,
		logger:  logger,
	}
}

// Paused reports whether automatic stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// TPS reports the current step rate.
func (d *Driver) TPS() int { return d.clock.TPS() }

func (d *Driver) color(v uint8) tcell.Color {
	if len(d.palette) == 0 {
		return tcell.ColorBlack
	}
	idx := int(v)
	if idx >= len(d.palette) {
		idx = len(d.palette) - 1
	}
	return d.palette[idx]
}

// Draw paints the grid and the status line.
func (d *Driver) Draw() {
	d.screen.Clear()
	sw, sh := d.screen.Size()
	size := d.sim.Size()
	cells := d.sim.Cells()

	rows := (size.H + 1) / 2
	if rows > sh-1 {
		rows = sh - 1
	}
	cols := size.W
	if cols > sw {
		cols = sw
	}
	for ty := 0; ty < rows; ty++ {
		top := 2 * ty
		bottom := top + 1
		for x := 0; x < cols; x++ {
			fg := d.color(cells[top*size.W+x])
			bg := tcell.ColorBlack
			if bottom < size.H {
				bg = d.color(cells[bottom*size.W+x])
			}
			d.screen.SetContent(x, ty, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	status := d.statusLine()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(status) {
		if i >= sw {
			break
		}
		d.screen.SetContent(i, rows, r, nil, style)
	}
	d.screen.Show()
}

func (d *Driver) statusLine() string {
	var b strings.Builder
	b.WriteString(d.sim.Name())
	if provider, ok := d.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"ticks", "burning", "dead"} {
			if p, ok := snap.Lookup(key); ok {
				fmt.Fprintf(&b, "  %s %s", strings.ToLower(p.Label), p.Value)
			}
		}
	}
	state := "running"
	switch {
	case d.finished:
		state = "finished"
	case d.paused:
		state = "paused"
	}
	fmt.Fprintf(&b, "  [%s]  %d tps", state, d.clock.TPS())
	return b.String()
}

// HandleEvent applies a terminal event and reports whether the driver should
// quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				d.paused = !d.paused
			case 'n':
				d.tickOnce = true
			case 'r':
				d.reset(d.seed)
			case 's':
				d.seed = time.Now().UnixNano()
				d.reset(d.seed)
			case '+', '=':
				d.clock.SetTPS(d.clock.TPS() * 2)
			case '-':
				if d.clock.TPS() > 1 {
					d.clock.SetTPS(d.clock.TPS() / 2)
				}
			}
		}
	}
	return false
}

func (d *Driver) reset(seed int64) {
	d.sim.Reset(seed)
	d.finished = false
	d.tickOnce = false
	d.logger.Info("reset", "sim", d.sim.Name(), "seed", seed)
}

// advance steps the sim once if it is running, and reports whether it just
// finished.
func (d *Driver) advance() bool {
	if d.finished || (d.paused && !d.tickOnce) {
		return false
	}
	d.tickOnce = false
	d.finished = d.sim.Step()
	return d.finished
}

// Run processes input and steps the sim until the user quits, ctx is
// cancelled, or (with ExitOnFinish) the sim settles. Returning cancels the
// event reader.
func (d *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	d.pollDone = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}(d.pollDone)

	interval := d.clock.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if d.HandleEvent(ev) {
				return nil
			}
			if d.clock.Interval() != interval {
				interval = d.clock.Interval()
				ticker.Reset(interval)
			}
			d.Draw()
		case <-ticker.C:
			if d.advance() {
				d.logger.Info("sim finished", "sim", d.sim.Name())
				d.Draw()
				if d.opts.ExitOnFinish {
					return nil
				}
				continue
			}
			d.Draw()
		}
	}
}
