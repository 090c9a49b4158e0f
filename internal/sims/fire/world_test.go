package fire

import (
	"slices"
	"testing"

	"fire-ca/internal/core"
)

func TestWorldResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	cfg.Params.InitialIgnitions = 5

	world := NewWithConfig(cfg)
	for i := 0; i < 10; i++ {
		world.Step()
	}
	afterTen := slices.Clone(world.Cells())

	world.Reset(0)
	for i := 0; i < 10; i++ {
		world.Step()
	}
	if !slices.Equal(afterTen, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	seeded := slices.Clone(world.Cells())
	world.Reset(777)
	if !slices.Equal(seeded, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
}

func TestWorldStepStopsAfterFinish(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Params = Params{IgniteProbability: 1, BurnDurationLimit: 0, InitialIgnitions: 1}
	world := NewWithConfig(cfg)

	steps := 0
	for !world.Step() {
		steps++
		if steps > 10 {
			t.Fatal("world never finished")
		}
	}
	if !world.Finished() {
		t.Fatal("Finished should report true")
	}
	if world.Ticks() != steps {
		t.Fatalf("Ticks = %d, want %d", world.Ticks(), steps)
	}
	display := slices.Clone(world.Cells())
	if !world.Step() || world.Ticks() != steps {
		t.Fatal("stepping a finished world should be a no-op")
	}
	if !slices.Equal(display, world.Cells()) {
		t.Fatal("display changed after finish")
	}

	world.Reset(0)
	if world.Finished() || world.Ticks() != 0 {
		t.Fatal("Reset should clear the finished state")
	}
}

func TestWorldStagesSettingsUntilReset(t *testing.T) {
	world := NewWorld(8, 8)
	if !world.SetFloatParameter("ignite_probability", 1.7) {
		t.Fatal("ignite_probability should be adjustable")
	}
	if !world.SetIntParameter("burn_duration_limit", 4) {
		t.Fatal("burn_duration_limit should be adjustable")
	}
	if world.SetIntParameter("w", 12) {
		t.Fatal("width is not adjustable at runtime")
	}
	if world.Grid().Params().IgniteProbability != DefaultConfig().Params.IgniteProbability {
		t.Fatal("running grid must keep its parameters")
	}
	if p, ok := world.Parameters().Lookup("ignite_probability"); !ok || p.Value != "1" {
		t.Fatalf("staged ignite_probability = %+v, want clamped to 1", p)
	}

	world.Reset(0)
	got := world.Grid().Params()
	if got.IgniteProbability != 1 || got.BurnDurationLimit != 4 {
		t.Fatalf("params after reset = %+v", got)
	}
}

func TestWorldParametersReportCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 4
	cfg.Params.InitialIgnitions = 0
	world := NewWithConfig(cfg)

	snap := world.Parameters()
	if p, ok := snap.Lookup("alive"); !ok || p.Value != "20" {
		t.Fatalf("alive = %+v, want 20", p)
	}
	if p, ok := snap.Lookup("burning"); !ok || p.Value != "0" {
		t.Fatalf("burning = %+v, want 0", p)
	}
	for _, ctrl := range world.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no matching parameter", ctrl.Key)
		}
	}
}

func TestFireRegistered(t *testing.T) {
	factory, ok := core.Sims()["fire"]
	if !ok {
		t.Fatal("fire sim not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "6"})
	if sim.Size() != (core.Size{W: 10, H: 6}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if len(sim.Cells()) != 60 {
		t.Fatalf("display length = %d, want 60", len(sim.Cells()))
	}
}

func TestWorldLoneFireBurnsOutBeforeFinishing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Params = Params{IgniteProbability: 0, BurnDurationLimit: 3, InitialIgnitions: 1}
	world := NewWithConfig(cfg)

	// Three stable ticks age the fire, the fourth kills it, the fifth settles.
	steps := 0
	for !world.Step() {
		steps++
		if counts := world.Grid().Counts(); counts.Burning != 1 && steps < 4 {
			t.Fatalf("step %d: burning = %d, want 1", steps, counts.Burning)
		}
		if steps > 10 {
			t.Fatal("world never finished")
		}
	}
	if steps != 4 || world.Ticks() != 4 {
		t.Fatalf("finished after %d steps (ticks %d), want 4", steps, world.Ticks())
	}
	if got := world.Grid().Counts(); got != (Counts{Alive: 8, Dead: 1}) {
		t.Fatalf("final counts = %+v", got)
	}
}

func TestWorldNeverFinishesWhileBurning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	for seed := int64(1); seed <= 20; seed++ {
		world := NewWithConfig(cfg)
		world.Reset(seed)
		for !world.Step() {
			if world.Ticks() > DefaultMaxTicks {
				t.Fatalf("seed %d: still running after %d ticks", seed, world.Ticks())
			}
		}
		if n := world.Grid().Counts().Burning; n != 0 {
			t.Fatalf("seed %d: finished at tick %d with %d burning", seed, world.Ticks(), n)
		}
	}
}

func TestWorldSettersMatchControls(t *testing.T) {
	world := NewWorld(8, 8)
	for _, ctrl := range world.ParameterControls() {
		var ok bool
		switch ctrl.Type {
		case core.ParamTypeInt:
			ok = world.SetIntParameter(ctrl.Key, int(ctrl.Min))
		case core.ParamTypeFloat:
			ok = world.SetFloatParameter(ctrl.Key, ctrl.Min)
		}
		if !ok {
			t.Fatalf("control %q rejected by its setter", ctrl.Key)
		}
	}
	for _, key := range []string{"seed", "w", "h", "ticks"} {
		if world.SetIntParameter(key, 5) {
			t.Fatalf("SetIntParameter(%q) accepted a key with no control", key)
		}
	}
}
