package main

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	LABEL_PAD_X      = 8
	LABEL_PAD_TOP    = 2
	LABEL_PAD_BOTTOM = 3
	LABEL_INSET      = 10
	LABEL_ALPHA      = 200
	LABEL_MAX_RADIUS = 6
)

// The dark variants read better on the panel than the pure palette colors.
var labelColors = map[string]color.NRGBA{
	"black": {0, 0, 0, 255},
	"blue":  {0, 0, 128, 255},
	"green": {0, 80, 0, 255},
	"red":   {128, 0, 0, 255},
}

// labelFont holds a parsed truetype font, or nothing when no candidate
// resolved. Faces are created per use, they are not safe to share between
// workers.
type labelFont struct {
	ft   *opentype.Font
	size int
}

// loadLabelFont tries the configured font path first, then the usual system
// faces. Failing all of those is fine, face() falls back to the built-in
// bitmap font.
func loadLabelFont(path string, size int) *labelFont {
	lf := &labelFont{size: size}
	var candidates []string
	if path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, "arial.ttf", "DejaVuSans.ttf")
	for _, c := range candidates {
		if filepath.Base(c) == c && !filepath.IsAbs(c) {
			if p := findSystemFont(c); p != "" {
				c = p
			}
		}
		b, err := os.ReadFile(c)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(b)
		if err != nil {
			logError("FONT  :", c, err)
			continue
		}
		lf.ft = ft
		break
	}
	return lf
}

func (lf *labelFont) face() font.Face {
	if lf.ft != nil {
		f, err := opentype.NewFace(lf.ft, &opentype.FaceOptions{Size: float64(lf.size), DPI: 72})
		if err == nil {
			return f
		}
	}
	return basicfont.Face7x13
}

// findSystemFont searches the platform font directories for the given file
// name, case-insensitively.
func findSystemFont(filename string) string {
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		dirs = []string{"C:\\Windows\\Fonts"}
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(os.Getenv("HOME"), "Library/Fonts")}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(os.Getenv("HOME"), ".fonts")}
	}
	lower := strings.ToLower(filename)
	for _, d := range dirs {
		if _, err := os.Stat(filepath.Join(d, filename)); err == nil {
			return filepath.Join(d, filename)
		}
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if strings.ToLower(e.Name()) == lower {
				return filepath.Join(d, e.Name())
			}
		}
	}
	return ""
}

// stampDate composites a rounded, semi-transparent label holding the capture
// date onto the bottom-right corner of the canvas. Must run before
// quantization so the label colors go through the same palette reduction as
// the photo. No-op when there is no date.
func stampDate(canvas *image.NRGBA, dateStr string, face font.Face, size int, bg color.NRGBA) {
	if dateStr == "" {
		return
	}
	d := &font.Drawer{Face: face}
	textW := d.MeasureString(dateStr).Ceil()

	boxW := textW + LABEL_PAD_X*2
	boxH := size + LABEL_PAD_TOP + LABEL_PAD_BOTTOM
	cb := canvas.Bounds()
	x := cb.Max.X - boxW - LABEL_INSET
	y := cb.Max.Y - boxH - LABEL_INSET

	radius := int(float64(boxH) / 2.5)
	if radius > LABEL_MAX_RADIUS {
		radius = LABEL_MAX_RADIUS
	}
	overlay := roundedBox(boxW, boxH, radius, color.NRGBA{bg.R, bg.G, bg.B, LABEL_ALPHA})
	draw.Draw(canvas, image.Rect(x, y, x+boxW, y+boxH), overlay, image.Point{}, draw.Over)

	top := y + (boxH-size)/2 - 1
	d.Dst = canvas
	d.Src = image.NewUniform(color.NRGBA{255, 255, 255, 255})
	d.Dot = fixed.P(x+LABEL_PAD_X, top+face.Metrics().Ascent.Ceil())
	d.DrawString(dateStr)
}

// roundedBox fills a w by h box with c, corners rounded to radius.
func roundedBox(w, h, radius int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRounded(x, y, w, h, radius) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func insideRounded(x, y, w, h, r int) bool {
	if r <= 0 {
		return true
	}
	if x >= r && x < w-r {
		return true
	}
	if y >= r && y < h-r {
		return true
	}
	cx := r
	if x >= w-r {
		cx = w - 1 - r
	}
	cy := r
	if y >= h-r {
		cy = h - 1 - r
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
