package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"fire-ca/internal/sims/fire"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestOverridesMergeFlagsAndSets(t *testing.T) {
	cfg := parse(t, "-w", "30", "-seed", "4", "-set", "ignite_probability=0.9", "-set", "w = 50")
	got, err := cfg.Overrides()
	if err != nil {
		t.Fatalf("Overrides: %v", err)
	}
	want := map[string]string{"w": "50", "seed": "4", "ignite_probability": "0.9"}
	if len(got) != len(want) {
		t.Fatalf("overrides = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("overrides[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestOverridesRejectsMalformedSet(t *testing.T) {
	cfg := parse(t, "-set", "nonsense")
	if _, err := cfg.Overrides(); err == nil {
		t.Fatal("expected error for -set without '='")
	}
}

func TestBuildSimFromRegistry(t *testing.T) {
	cfg := parse(t, "-w", "12", "-h", "7")
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatalf("BuildSim: %v", err)
	}
	if s := sim.Size(); s.W != 12 || s.H != 7 {
		t.Fatalf("size = %+v", s)
	}
	if len(Palette(sim)) != len(fire.Palette()) {
		t.Fatal("fire sim should supply its own palette")
	}
}

func TestBuildSimLayersConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fire.yaml")
	doc := "width: 40\nheight: 10\nparams:\n  burn_duration_limit: 2\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := parse(t, "-config", path, "-h", "20")
	sim, err := BuildSim(cfg)
	if err != nil {
		t.Fatalf("BuildSim: %v", err)
	}
	world := sim.(*fire.World)
	if got := world.Config(); got.Width != 40 || got.Height != 20 || got.Params.BurnDurationLimit != 2 {
		t.Fatalf("config = %+v", got)
	}
}

func TestBuildSimErrors(t *testing.T) {
	if _, err := BuildSim(parse(t, "-sim", "nope")); err == nil {
		t.Fatal("unknown sim should fail")
	}
	if _, err := BuildSim(parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))); err == nil {
		t.Fatal("missing config file should fail")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("debug"); err != nil {
		t.Fatalf("NewLogger(debug): %v", err)
	}
	if _, err := NewLogger("loud"); err == nil {
		t.Fatal("unknown level should fail")
	}
}
