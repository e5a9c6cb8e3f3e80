package main

import (
	"image/color"
	"testing"
)

func TestEnhanceIdentityFactors(t *testing.T) {
	gray := color.NRGBA{100, 100, 100, 255}
	out := enhance(uniform(32, 32, gray), 1.0, 1.0, 1.0)
	b := out.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("size changed to %dx%d", b.Dx(), b.Dy())
	}
	// the convolutions are normalized, a uniform image stays uniform
	assertNear(t, "identity", out.NRGBAAt(16, 16), gray)
	assertNear(t, "identity edge", out.NRGBAAt(0, 0), gray)
}

func TestEnhanceBrightnessMultiplies(t *testing.T) {
	out := enhance(uniform(32, 32, color.NRGBA{100, 100, 100, 255}), 1.5, 1.0, 1.0)
	assertNear(t, "brightness", out.NRGBAAt(16, 16), color.NRGBA{150, 150, 150, 255})
}

func TestEnhanceBrightnessClamps(t *testing.T) {
	out := enhance(uniform(8, 8, color.NRGBA{200, 200, 200, 255}), 2.0, 1.0, 1.0)
	assertNear(t, "clamp high", out.NRGBAAt(4, 4), color.NRGBA{255, 255, 255, 255})
	out = enhance(uniform(8, 8, color.NRGBA{200, 200, 200, 255}), -1.0, 1.0, 1.0)
	assertNear(t, "clamp low", out.NRGBAAt(4, 4), color.NRGBA{0, 0, 0, 255})
}

func TestEnhanceContrastPushesFromMidpoint(t *testing.T) {
	light := enhance(uniform(8, 8, color.NRGBA{200, 200, 200, 255}), 1.0, 1.4, 1.0)
	if light.NRGBAAt(4, 4).R <= 200 {
		t.Fatalf("contrast did not lighten a light gray: %v", light.NRGBAAt(4, 4))
	}
	dark := enhance(uniform(8, 8, color.NRGBA{60, 60, 60, 255}), 1.0, 1.4, 1.0)
	if dark.NRGBAAt(4, 4).R >= 60 {
		t.Fatalf("contrast did not darken a dark gray: %v", dark.NRGBAAt(4, 4))
	}
}

func TestEnhanceSaturation(t *testing.T) {
	washed := color.NRGBA{150, 100, 100, 255}
	out := enhance(uniform(8, 8, washed), 1.0, 1.0, 1.5)
	got := out.NRGBAAt(4, 4)
	if int(got.R)-int(got.G) <= int(washed.R)-int(washed.G) {
		t.Fatalf("saturation did not widen the channel spread: %v -> %v", washed, got)
	}
}
