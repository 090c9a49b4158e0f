package term

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"fire-ca/internal/sims/fire"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newWorld(w, h int, p fire.Params) *fire.World {
	cfg := fire.DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params = p
	return fire.NewWithConfig(cfg)
}

func rowText(cells []tcell.SimCell, width, row int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		c := cells[row*width+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestDrawPacksTwoRowsPerLine(t *testing.T) {
	screen := newScreen(t, 60, 6)
	world := newWorld(4, 3, fire.Params{InitialIgnitions: 0})
	d := New(screen, world, world.Palette(), 1, Options{TPS: 10}, log.New(io.Discard))

	d.Draw()
	cells, width, _ := screen.GetContents()

	alive := tcell.NewRGBColor(int32(world.Palette()[1].R), int32(world.Palette()[1].G), int32(world.Palette()[1].B))
	top := cells[0]
	if len(top.Runes) == 0 || top.Runes[0] != '▀' {
		t.Fatalf("top-left rune = %q, want half block", top.Runes)
	}
	fg, bg, _ := top.Style.Decompose()
	if fg != alive || bg != alive {
		t.Fatalf("top-left colors fg=%v bg=%v, want alive on alive", fg, bg)
	}
	// Row 2 of the grid has no partner, so its lower half is black.
	_, bg, _ = cells[1*width].Style.Decompose()
	if bg != tcell.ColorBlack {
		t.Fatalf("odd trailing row background = %v, want black", bg)
	}
	status := rowText(cells, width, 2)
	if !strings.HasPrefix(status, "fire") || !strings.Contains(status, "[running]") {
		t.Fatalf("status line = %q", status)
	}
}

func TestHandleEventControls(t *testing.T) {
	screen := newScreen(t, 40, 10)
	world := newWorld(8, 8, fire.Params{IgniteProbability: 1, BurnDurationLimit: 2, InitialIgnitions: 1})
	d := New(screen, world, world.Palette(), 1, Options{TPS: 8}, log.New(io.Discard))

	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	if d.HandleEvent(key(' ')) || !d.Paused() {
		t.Fatal("space should pause")
	}
	if d.advance() || world.Ticks() != 0 {
		t.Fatal("paused driver should not step")
	}
	d.HandleEvent(key('n'))
	d.advance()
	if world.Ticks() != 1 {
		t.Fatalf("single step left ticks at %d", world.Ticks())
	}
	d.HandleEvent(key('+'))
	if d.TPS() != 16 {
		t.Fatalf("TPS after + = %d, want 16", d.TPS())
	}
	d.HandleEvent(key('-'))
	d.HandleEvent(key('-'))
	if d.TPS() != 4 {
		t.Fatalf("TPS after two - = %d, want 4", d.TPS())
	}
	d.HandleEvent(key('r'))
	if world.Ticks() != 0 {
		t.Fatal("r should reset the world")
	}
	if !d.HandleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestRunExitsWhenFinished(t *testing.T) {
	screen := newScreen(t, 40, 10)
	world := newWorld(5, 5, fire.Params{IgniteProbability: 1, BurnDurationLimit: 0, InitialIgnitions: 1})
	d := New(screen, world, world.Palette(), 1, Options{TPS: 1000, ExitOnFinish: true}, log.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run only returned because the context expired")
	}
	if !world.Finished() {
		t.Fatal("world should be finished")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 40, 10)
	world := newWorld(5, 5, fire.Params{IgniteProbability: 0.5, BurnDurationLimit: 3, InitialIgnitions: 1})
	d := New(screen, world, world.Palette(), 1, Options{TPS: 30}, log.New(io.Discard))
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRunReleasesEventReaderOnQuit(t *testing.T) {
	screen := newScreen(t, 40, 10)
	world := newWorld(5, 5, fire.Params{IgniteProbability: 0.5, BurnDurationLimit: 3, InitialIgnitions: 1})
	d := New(screen, world, world.Palette(), 1, Options{TPS: 1}, log.New(io.Discard))
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	// An event arriving after quit has no receiver; the reader must drop it.
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	select {
	case <-d.pollDone:
	case <-time.After(5 * time.Second):
		t.Fatal("event reader still blocked after Run returned")
	}
}
