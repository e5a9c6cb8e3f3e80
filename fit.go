package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/liujiawm/graphics-go/graphics"
)

// The panel takes exactly two frame sizes.
const (
	CANVAS_LONG  = 800
	CANVAS_SHORT = 480
)

var canvasWhite = color.NRGBA{255, 255, 255, 255}

// canvasSize picks the frame for an already reoriented image. The comparison
// is strictly w > h, so a square image gets the portrait frame.
func canvasSize(w, h int) (int, int) {
	if w > h {
		return CANVAS_LONG, CANVAS_SHORT
	}
	return CANVAS_SHORT, CANVAS_LONG
}

// fitCanvas maps the source onto its target frame.
//
// MODE_SCALE resizes by the larger of the two cover ratios and pastes the
// result centered, so the frame is fully covered and the overflowing
// dimension is cropped. MODE_CUT pastes the source centered at original
// size, white-padding or cropping as the sizes dictate.
func fitCanvas(src image.Image, mode string) (*image.NRGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tw, th := canvasSize(w, h)
	canvas := imaging.New(tw, th, canvasWhite)

	switch mode {
	case MODE_SCALE:
		ratio := math.Max(float64(tw)/float64(w), float64(th)/float64(h))
		rw := int(math.Round(float64(w) * ratio))
		rh := int(math.Round(float64(h) * ratio))
		resized := image.NewRGBA(image.Rect(0, 0, rw, rh))
		if err := graphics.Scale(resized, src); err != nil {
			return nil, fmt.Errorf("scale to %dx%d: %w", rw, rh, err)
		}
		return imaging.Paste(canvas, resized, image.Pt(floorDiv(tw-rw, 2), floorDiv(th-rh, 2))), nil
	case MODE_CUT:
		return imaging.PasteCenter(canvas, src), nil
	}
	return nil, fmt.Errorf("unknown image conversion mode '%s'", mode)
}

// floorDiv divides rounding toward negative infinity, so centering offsets
// match on both the padded and the overflowing dimension.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
