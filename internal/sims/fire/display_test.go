package fire

import "testing"

func TestHeatLevel(t *testing.T) {
	cases := []struct {
		timer uint32
		limit int
		want  int
	}{
		{timer: 0, limit: 10, want: 0},
		{timer: 10, limit: 10, want: HeatLevels - 1},
		{timer: 5, limit: 10, want: 3},
		{timer: 0, limit: 0, want: 0},
		{timer: 40, limit: 3, want: HeatLevels - 1},
	}
	for _, tc := range cases {
		if got := HeatLevel(tc.timer, tc.limit); got != tc.want {
			t.Fatalf("HeatLevel(%d, %d) = %d, want %d", tc.timer, tc.limit, got, tc.want)
		}
	}
}

func TestEncodeDisplayStaysInPalette(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 4}}
	g := New(3, 3, Params{IgniteProbability: 1, BurnDurationLimit: 2, InitialIgnitions: 2}, src)
	display := make([]uint8, 9)

	palette := Palette()
	if len(palette) != displayBurning+HeatLevels {
		t.Fatalf("palette length = %d", len(palette))
	}
	for tick := 0; tick < 6; tick++ {
		EncodeDisplay(display, g)
		for i, v := range display {
			if int(v) >= len(palette) {
				t.Fatalf("tick %d: display[%d] = %d outside palette", tick, i, v)
			}
			switch g.Cells()[i] {
			case Alive:
				if v != displayAlive {
					t.Fatalf("alive cell encoded as %d", v)
				}
			case Dead:
				if v != displayDead {
					t.Fatalf("dead cell encoded as %d", v)
				}
			case Burning:
				if v < displayBurning {
					t.Fatalf("burning cell encoded as %d", v)
				}
			}
		}
		g.Tick(src)
	}
}
