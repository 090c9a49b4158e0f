package render

import (
	"image/color"
	"testing"
)

var testPalette = []color.RGBA{
	{R: 1, G: 2, B: 3, A: 255},
	{R: 10, G: 20, B: 30, A: 255},
}

func TestFillPaletteRGBAClampsIndices(t *testing.T) {
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 9}, testPalette)
	want := []byte{1, 2, 3, 255, 10, 20, 30, 255, 10, 20, 30, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestPaletteImageScales(t *testing.T) {
	img := PaletteImage([]uint8{0, 1, 1, 0}, 2, 2, testPalette, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, testPalette[0]},
		{2, 2, testPalette[0]},
		{3, 0, testPalette[1]},
		{5, 2, testPalette[1]},
		{0, 3, testPalette[1]},
		{4, 5, testPalette[0]},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
