package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	_ "golang.org/x/image/tiff"
)

const (
	PIC_SUBFOLDER = "pic"
	MANIFEST_NAME = "fileList.txt"

	ORIENT_PORTRAIT  = "portrait"
	ORIENT_LANDSCAPE = "landscape"
	ORIENT_BOTH      = "both"

	MODE_SCALE = "scale"
	MODE_CUT   = "cut"

	DITHER_NONE  = "none"
	DITHER_FLOYD = "floyd-steinberg"
)

// imageExts lists extensions accepted even when the MIME table has no entry
// for them. HEIC files pass the filter but fail per-image at decode.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true,
	".gif": true, ".tif": true, ".tiff": true, ".heic": true,
}

type Config struct {
	Orientation string
	Mode        string
	Dither      string
	Brightness  float64
	Contrast    float64
	Saturation  float64
	ShowDate    bool
	DateColor   string
	DateSize    int
	DateFont    string
	DateFromMod bool
	DeleteOld   bool
	Jobs        int
	PhotosPath  string
	DiskPath    string
	LogMask     string
	ServePort   int
	Verbose     bool
}

func parseFlags() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.Orientation, "orientation", ORIENT_BOTH, "keep only images of this orientation (portrait|landscape|both)")
	flag.StringVarP(&cfg.Mode, "image-conversion-mode", "m", MODE_CUT, "geometry policy (scale|cut)")
	flag.StringVar(&cfg.Dither, "dithering-algorithm", DITHER_FLOYD, "dithering (none|floyd-steinberg)")
	flag.Float64Var(&cfg.Brightness, "brightness", 1.2, "brightness multiplier")
	flag.Float64Var(&cfg.Contrast, "contrast", 1.4, "contrast multiplier")
	flag.Float64Var(&cfg.Saturation, "saturation", 1.3, "saturation multiplier")
	flag.BoolVar(&cfg.ShowDate, "show-date", false, "stamp the capture date on each image")
	flag.StringVar(&cfg.DateColor, "date-color", "blue", "date label color (black|blue|green|red)")
	flag.IntVar(&cfg.DateSize, "date-size", 10, "date label font size in pixels")
	flag.StringVar(&cfg.DateFont, "date-font", "", "path to a .ttf font for the date label")
	flag.BoolVar(&cfg.DateFromMod, "date-from-modtime", false, "fall back to the file modification date when no capture date is found")
	flag.BoolVar(&cfg.DeleteOld, "delete-old-images", false, "empty the output folder before converting")
	flag.IntVar(&cfg.Jobs, "jobs", 1, "number of images converted in parallel")
	flag.StringVar(&cfg.PhotosPath, "photos-path", ".", "directory where photos are located")
	flag.StringVar(&cfg.DiskPath, "disk-path", ".", "where to place output files (sd card is recommended)")
	flag.StringVar(&cfg.LogMask, "log", "", "log file name mask, eg photopaper-%y-%d.log (default stderr)")
	flag.IntVar(&cfg.ServePort, "serve", 0, "serve converted output over HTTP on this port after the run")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log each converted file")
	flag.Parse()
	return cfg
}

func (cfg *Config) validate() error {
	switch cfg.Orientation {
	case ORIENT_PORTRAIT, ORIENT_LANDSCAPE, ORIENT_BOTH:
	default:
		return fmt.Errorf("invalid orientation '%s'", cfg.Orientation)
	}
	switch cfg.Mode {
	case MODE_SCALE, MODE_CUT:
	default:
		return fmt.Errorf("invalid image conversion mode '%s'", cfg.Mode)
	}
	switch cfg.Dither {
	case DITHER_NONE, DITHER_FLOYD:
	default:
		return fmt.Errorf("invalid dithering algorithm '%s'", cfg.Dither)
	}
	if _, ok := labelColors[cfg.DateColor]; !ok {
		return fmt.Errorf("invalid date color '%s'", cfg.DateColor)
	}
	if cfg.DateSize < 1 {
		return fmt.Errorf("date size must be a positive number of pixels")
	}
	if cfg.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1")
	}
	return nil
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExts[ext] || strings.Contains(mime.TypeByExtension(ext), "image") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func ensureOutputDir(diskPath string, purge bool) (string, error) {
	outDir := filepath.Join(diskPath, PIC_SUBFOLDER)
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", err
	}
	if purge {
		entries, err := os.ReadDir(outDir)
		if err != nil {
			return "", err
		}
		for _, e := range entries {
			if err := os.Remove(filepath.Join(outDir, e.Name())); err != nil {
				logError("PURGE :", e.Name(), err)
			}
		}
	}
	return outDir, nil
}

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		log.Fatalf("Configuration: %s", err)
	}
	if cfg.LogMask != "" {
		lw, err := NewRunLogWriter(cfg.LogMask)
		if err != nil {
			log.Fatalf("Log file: %s", err)
		}
		log.SetOutput(lw)
		defer lw.Close()
	}

	files, err := listImages(cfg.PhotosPath)
	if err != nil {
		log.Fatalf("Photos path '%s': %s", cfg.PhotosPath, err)
	}
	if len(files) == 0 {
		log.Fatalf("No image files found in '%s'", cfg.PhotosPath)
	}
	if cfg.Orientation != ORIENT_BOTH {
		files = filterByOrientation(files, cfg.Orientation, cfg.Verbose)
		if len(files) == 0 {
			log.Fatalf("No %s images found in '%s'", cfg.Orientation, cfg.PhotosPath)
		}
	}

	outDir, err := ensureOutputDir(cfg.DiskPath, cfg.DeleteOld)
	if err != nil {
		log.Fatalf("Output path '%s': %s", cfg.DiskPath, err)
	}

	var lf *labelFont
	if cfg.ShowDate {
		lf = loadLabelFont(cfg.DateFont, cfg.DateSize)
	}

	var results []*ProcResult
	if cfg.Jobs > 1 {
		results = runPool(cfg, lf, files, outDir)
	} else {
		results = runSequential(cfg, lf, files, outDir)
	}

	ok, failed := tally(results)
	log.Printf("Converted %d images, %d failed", ok, failed)
	if ok == 0 {
		log.Fatalf("No images converted")
	}
	if err := writeManifest(cfg.DiskPath, results); err != nil {
		log.Fatalf("Manifest: %s", err)
	}
	log.Printf("Created %s with %d entries", MANIFEST_NAME, ok)

	if cfg.ServePort > 0 {
		srv := NewPreviewServer(cfg.ServePort, cfg.DiskPath, cfg.Verbose)
		if err := srv.Run(); err != nil && err != http.ErrServerClosed {
			logError("SERVE :", fmt.Sprintf("port %d", cfg.ServePort), err)
			os.Exit(1)
		}
	}
}
