package main

import (
	"image"
	"image/color"
	"image/draw"

	dithering "github.com/diantanjung/filter-dither"
)

// displayPalette is the ink set of the panel: black, white, green, blue,
// red, yellow. The table is padded to 256 entries with black; the pads sit
// behind the live black entry and never win a nearest-color match.
func displayPalette() color.Palette {
	pal := color.Palette{
		color.NRGBA{0, 0, 0, 255},
		color.NRGBA{255, 255, 255, 255},
		color.NRGBA{0, 255, 0, 255},
		color.NRGBA{0, 0, 255, 255},
		color.NRGBA{255, 0, 0, 255},
		color.NRGBA{255, 255, 0, 255},
	}
	for len(pal) < 256 {
		pal = append(pal, color.NRGBA{0, 0, 0, 255})
	}
	return pal
}

// quantize reduces the image to the display palette and re-expands it to
// plain RGB, so every stored pixel is one of the six exact palette colors.
// This is the last pixel transform before encoding.
func quantize(img *image.NRGBA, ditherMode string) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewPaletted(b, displayPalette())
	if ditherMode == DITHER_FLOYD {
		fs := dithering.NewDither(dithering.FloydSteinberg)
		fs.Draw(dst, b, img)
	} else {
		draw.Draw(dst, b, img, b.Min, draw.Src)
	}
	out := image.NewNRGBA(b)
	draw.Draw(out, b, dst, b.Min, draw.Src)
	return out
}
