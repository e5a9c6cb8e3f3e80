package main

import (
	"image"
	"image/color"
	"testing"
)

var paletteSet = map[color.NRGBA]bool{
	{0, 0, 0, 255}:       true,
	{255, 255, 255, 255}: true,
	{0, 255, 0, 255}:     true,
	{0, 0, 255, 255}:     true,
	{255, 0, 0, 255}:     true,
	{255, 255, 0, 255}:   true,
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				uint8(x * 255 / w),
				uint8(y * 255 / h),
				uint8((x + y) * 255 / (w + h)),
				255,
			})
		}
	}
	return img
}

func TestDisplayPalette(t *testing.T) {
	pal := displayPalette()
	if len(pal) != 256 {
		t.Fatalf("palette has %d entries, expected 256", len(pal))
	}
	for i, want := range []color.NRGBA{
		{0, 0, 0, 255}, {255, 255, 255, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 0, 0, 255}, {255, 255, 0, 255},
	} {
		if pal[i].(color.NRGBA) != want {
			t.Fatalf("palette entry %d is %v, expected %v", i, pal[i], want)
		}
	}
	for i := 6; i < 256; i++ {
		if pal[i].(color.NRGBA) != (color.NRGBA{0, 0, 0, 255}) {
			t.Fatalf("palette pad %d is %v, expected black", i, pal[i])
		}
	}
}

func TestQuantizeOnlyPaletteColors(t *testing.T) {
	for _, mode := range []string{DITHER_NONE, DITHER_FLOYD} {
		out := quantize(gradient(64, 64), mode)
		assertPaletteOnly(t, mode, out)
	}
}

func TestQuantizeKeepsExactPaletteColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 1))
	i := 0
	for c := range paletteSet {
		img.SetNRGBA(i, 0, c)
		i++
	}
	out := quantize(img, DITHER_NONE)
	for x := 0; x < 6; x++ {
		if out.NRGBAAt(x, 0) != img.NRGBAAt(x, 0) {
			t.Fatalf("exact palette color at %d changed from %v to %v", x, img.NRGBAAt(x, 0), out.NRGBAAt(x, 0))
		}
	}
}

func assertPaletteOnly(t *testing.T, id string, img *image.NRGBA) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !paletteSet[img.NRGBAAt(x, y)] {
				t.Fatalf("Failed: id:%s pixel (%d,%d) is %v, not a palette color", id, x, y, img.NRGBAAt(x, y))
			}
		}
	}
}
