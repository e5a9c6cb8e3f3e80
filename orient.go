package main

import (
	"image"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

// reorient applies the standard EXIF orientation correction so the pixel
// data is upright. Unknown or missing values are the identity.
//
//	1 upright            5 flip horizontal then rotate 90 ccw
//	2 flip horizontal    6 rotate 270 ccw
//	3 rotate 180         7 flip horizontal then rotate 270 ccw
//	4 flip vertical      8 rotate 90 ccw
func reorient(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Rotate90(imaging.FlipH(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Rotate270(imaging.FlipH(img))
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}

// isLandscape classifies by stored dimensions, except that orientations 5-8
// swap the axes on display, so those are always portrait. A square image is
// portrait.
func isLandscape(w, h, orientation int) bool {
	if orientation >= 5 && orientation <= 8 {
		return false
	}
	return w > h
}

// classify probes a file for its display orientation without decoding the
// pixel data.
func classify(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return false, err
	}
	pic := NewPicture(path, false)
	return isLandscape(cfg.Width, cfg.Height, pic.orientation), nil
}

// filterByOrientation drops images that do not match the wanted orientation.
// Files that cannot be probed are dropped too, with a logged reason.
func filterByOrientation(files []string, want string, verbose bool) []string {
	kept := make([]string, 0, len(files))
	skipped := 0
	for _, path := range files {
		landscape, err := classify(path)
		if err != nil {
			logError("PROBE :", path, err)
			skipped++
			continue
		}
		if landscape == (want == ORIENT_LANDSCAPE) {
			kept = append(kept, path)
		} else {
			skipped++
			if verbose {
				logError("SKIP  :", path, nil)
			}
		}
	}
	log.Printf("Kept %d %s images, skipped %d", len(kept), want, skipped)
	return kept
}
