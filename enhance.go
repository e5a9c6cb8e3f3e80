package main

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// 3x3 kernels with their divisors folded into the coefficients.
var (
	kernelEdgeEnhance = [9]float64{
		-0.5, -0.5, -0.5,
		-0.5, 5.0, -0.5,
		-0.5, -0.5, -0.5,
	}
	kernelSmooth = [9]float64{
		1.0 / 13, 1.0 / 13, 1.0 / 13,
		1.0 / 13, 5.0 / 13, 1.0 / 13,
		1.0 / 13, 1.0 / 13, 1.0 / 13,
	}
	kernelSharpen = [9]float64{
		-0.125, -0.125, -0.125,
		-0.125, 2.0, -0.125,
		-0.125, -0.125, -0.125,
	}
)

// enhance runs the fixed adjustment chain: brightness, contrast, saturation,
// then edge enhance, smooth and sharpen. Each factor is a multiplier with
// 1.0 meaning no change. Factors are not validated, extreme values clamp at
// the channel bounds.
func enhance(img *image.NRGBA, brightness, contrast, saturation float64) *image.NRGBA {
	out := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.R = clamp8(float64(c.R) * brightness)
		c.G = clamp8(float64(c.G) * brightness)
		c.B = clamp8(float64(c.B) * brightness)
		return c
	})
	out = imaging.AdjustContrast(out, (contrast-1)*100)
	out = imaging.AdjustSaturation(out, (saturation-1)*100)
	out = imaging.Convolve3x3(out, kernelEdgeEnhance, nil)
	out = imaging.Convolve3x3(out, kernelSmooth, nil)
	out = imaging.Convolve3x3(out, kernelSharpen, nil)
	return out
}

func clamp8(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v + 0.5)
}
