package main

import (
	"image"
	"image/color"
	"testing"
)

var (
	tRed    = color.NRGBA{255, 0, 0, 255}
	tGreen  = color.NRGBA{0, 255, 0, 255}
	tBlue   = color.NRGBA{0, 0, 255, 255}
	tYellow = color.NRGBA{255, 255, 0, 255}
	tWhite  = color.NRGBA{255, 255, 255, 255}
)

// quad returns a 2x2 image: red green / blue yellow.
func quad() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, tRed)
	img.SetNRGBA(1, 0, tGreen)
	img.SetNRGBA(0, 1, tBlue)
	img.SetNRGBA(1, 1, tYellow)
	return img
}

func TestReorientTable(t *testing.T) {
	cases := []struct {
		orientation    int
		redX, redY     int
		greenX, greenY int
	}{
		{1, 0, 0, 1, 0},
		{2, 1, 0, 0, 0},
		{3, 1, 1, 0, 1},
		{4, 0, 1, 1, 1},
		{5, 0, 0, 0, 1},
		{6, 1, 0, 1, 1},
		{7, 1, 1, 1, 0},
		{8, 0, 1, 0, 0},
	}
	for _, c := range cases {
		got := reorient(quad(), c.orientation)
		b := got.Bounds()
		if b.Dx() != 2 || b.Dy() != 2 {
			t.Fatalf("orientation %d: size %dx%d, expected 2x2", c.orientation, b.Dx(), b.Dy())
		}
		assertPixel(t, "red", c.orientation, got, c.redX, c.redY, tRed)
		assertPixel(t, "green", c.orientation, got, c.greenX, c.greenY, tGreen)
	}
}

func TestReorientUnknownIsIdentity(t *testing.T) {
	for _, o := range []int{0, 1, 9, -3, 99} {
		got := reorient(quad(), o)
		assertPixel(t, "red", o, got, 0, 0, tRed)
		assertPixel(t, "yellow", o, got, 1, 1, tYellow)
	}
}

func TestIsLandscape(t *testing.T) {
	assertBool(t, "001", isLandscape(100, 50, 1), true)
	assertBool(t, "002", isLandscape(50, 100, 1), false)
	assertBool(t, "003", isLandscape(70, 70, 1), false)
	assertBool(t, "004", isLandscape(100, 50, 3), true)
	// 5-8 display rotated, always portrait
	assertBool(t, "005", isLandscape(100, 50, 5), false)
	assertBool(t, "006", isLandscape(100, 50, 6), false)
	assertBool(t, "007", isLandscape(100, 50, 7), false)
	assertBool(t, "008", isLandscape(100, 50, 8), false)
}

// Five images, three portrait and two landscape, one of the landscape pair
// tagged with orientation 6: a portrait filter keeps four of them.
func TestPortraitFilterClassification(t *testing.T) {
	dims := []struct {
		w, h, orientation int
	}{
		{50, 100, 1},
		{40, 80, 1},
		{10, 20, 1},
		{100, 50, 1},
		{100, 50, 6},
	}
	kept := 0
	for _, d := range dims {
		if !isLandscape(d.w, d.h, d.orientation) {
			kept++
		}
	}
	if kept != 4 {
		t.Fatalf("portrait filter kept %d, expected 4", kept)
	}
}

func assertPixel(t *testing.T, id string, orientation int, img image.Image, x, y int, expected color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)).(color.NRGBA)
	if got != expected {
		t.Fatalf("orientation %d: %s at (%d,%d) is %v, expected %v", orientation, id, x, y, got, expected)
	}
}

func assertBool(t *testing.T, id string, val, expected bool) {
	t.Helper()
	if val != expected {
		t.Fatalf("Failed: id:%s expected:%t actual:%t", id, expected, val)
	}
}
