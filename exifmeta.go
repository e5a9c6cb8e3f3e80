package main

import (
	"io"
	"os"
	"strings"

	"github.com/evanoberholster/imagemeta"
	"github.com/rwcarlsen/goexif/exif"
)

// dateFields is the capture-date search order for the legacy EXIF read.
// The first field holding a usable value wins.
var dateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
	exif.FieldName("XPDateTaken"),
}

// Picture holds the metadata read from an image file before it is decoded.
// Metadata failures never surface as errors here. A file without a readable
// orientation tag is upright (1) and a file without a capture date has an
// empty dateStr. The err field is kept for verbose logging only.
type Picture struct {
	source      string
	orientation int
	dateStr     string
	err         error
}

func NewPicture(source string, useModTime bool) *Picture {
	pic := &Picture{source: source, orientation: 1}
	f, err := os.Open(source)
	if err != nil {
		pic.err = err
		return pic
	}
	defer f.Close()

	if x, err := exif.Decode(f); err == nil {
		if tag, err := x.Get(exif.Orientation); err == nil {
			if v, err := tag.Int(0); err == nil && v >= 1 && v <= 8 {
				pic.orientation = v
			}
		}
		for _, field := range dateFields {
			tag, err := x.Get(field)
			if err != nil || tag == nil {
				continue
			}
			raw, err := tag.StringVal()
			if err != nil {
				continue
			}
			if d, ok := normalizeDate(raw); ok {
				pic.dateStr = d
				break
			}
		}
	} else {
		pic.err = err
	}

	// Second chance with the newer metadata reader. It covers files the
	// legacy decoder gives up on, but only the two common date tags.
	if pic.dateStr == "" {
		if _, err := f.Seek(0, io.SeekStart); err == nil {
			if m, err := imagemeta.Decode(f); err == nil {
				if t := m.DateTimeOriginal(); !t.IsZero() {
					pic.dateStr = t.Format("2006-01-02")
				} else if t := m.CreateDate(); !t.IsZero() {
					pic.dateStr = t.Format("2006-01-02")
				}
			}
		}
	}

	if pic.dateStr == "" && useModTime {
		if fi, err := os.Stat(source); err == nil {
			pic.dateStr = fi.ModTime().Format("2006-01-02")
		}
	}
	return pic
}

// normalizeDate turns a raw EXIF date value into YYYY-MM-DD. Values that are
// too short or not shaped like a date are rejected rather than guessed at.
func normalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 10 {
		return "", false
	}
	d := strings.ReplaceAll(raw[:10], ":", "-")
	if d[4] != '-' || d[7] != '-' {
		return "", false
	}
	return d, true
}
