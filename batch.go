package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
)

// ProcResult records the outcome for one input image. Immutable once made.
type ProcResult struct {
	Source string
	Output string // relative name under pic/, empty on failure
	Err    error
}

func (r *ProcResult) OK() bool {
	return r.Err == nil
}

func outputName(n int) string {
	return fmt.Sprintf("%06d.bmp", n)
}

// convertOne runs the whole per-image pipeline: metadata probe, decode,
// orientation fix, canvas fit, date stamp, enhancement, quantization, BMP
// encode. Any failure belongs to this image alone. The frame buffer ew is
// reset and reused, callers keep one per worker.
func convertOne(cfg *Config, lf *labelFont, ew *EncodedWriter, srcPath, outPath string) error {
	pic := NewPicture(srcPath, cfg.DateFromMod)
	if pic.err != nil && cfg.Verbose {
		logError("EXIF  :", srcPath, pic.err)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	canvas, err := fitCanvas(reorient(src, pic.orientation), cfg.Mode)
	if err != nil {
		return err
	}
	if cfg.ShowDate {
		stampDate(canvas, pic.dateStr, lf.face(), cfg.DateSize, labelColors[cfg.DateColor])
	}
	final := quantize(enhance(canvas, cfg.Brightness, cfg.Contrast, cfg.Saturation), cfg.Dither)

	ew.Reset()
	if err := bmp.Encode(ew, final); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(outPath, ew.Bytes(), 0644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// runSequential converts one image at a time, in input order. The output
// counter advances only on success, so a failed image never consumes a
// number.
func runSequential(cfg *Config, lf *labelFont, files []string, outDir string) []*ProcResult {
	results := make([]*ProcResult, 0, len(files))
	ew := NewEncodedWriter(16 * 1024)
	counter := 1
	for _, src := range files {
		name := outputName(counter)
		if err := convertOne(cfg, lf, ew, src, filepath.Join(outDir, name)); err != nil {
			logError("FAIL  :", src, err)
			results = append(results, &ProcResult{Source: src, Err: err})
			continue
		}
		if cfg.Verbose {
			logError("OK    :", fmt.Sprintf("%s -> %s", src, name), nil)
		}
		results = append(results, &ProcResult{Source: src, Output: name})
		counter++
	}
	return results
}

// runPool converts images on cfg.Jobs workers. Output numbers are assigned
// by input index before dispatch, which keeps filenames reproducible across
// runs; a failed image leaves a hole in the numbering. Results arrive in
// completion order, and so do the manifest entries.
func runPool(cfg *Config, lf *labelFont, files []string, outDir string) []*ProcResult {
	type job struct {
		index int
		src   string
	}
	jobs := make(chan job)
	out := make(chan *ProcResult, cfg.Jobs*2)
	var wg sync.WaitGroup

	wg.Add(cfg.Jobs)
	for i := 0; i < cfg.Jobs; i++ {
		go func() {
			defer wg.Done()
			ew := NewEncodedWriter(16 * 1024)
			for j := range jobs {
				name := outputName(j.index + 1)
				if err := convertOne(cfg, lf, ew, j.src, filepath.Join(outDir, name)); err != nil {
					logError("FAIL  :", j.src, err)
					out <- &ProcResult{Source: j.src, Err: err}
					continue
				}
				if cfg.Verbose {
					logError("OK    :", fmt.Sprintf("%s -> %s", j.src, name), nil)
				}
				out <- &ProcResult{Source: j.src, Output: name}
			}
		}()
	}
	go func() {
		for i, src := range files {
			jobs <- job{index: i, src: src}
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]*ProcResult, 0, len(files))
	for r := range out {
		results = append(results, r)
	}
	return results
}

func tally(results []*ProcResult) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}

// writeManifest lists the converted files, one relative path per line, in
// the order their results were collected.
func writeManifest(diskPath string, results []*ProcResult) error {
	var sb strings.Builder
	for _, r := range results {
		if r.OK() {
			sb.WriteString(filepath.Join(PIC_SUBFOLDER, r.Output))
			sb.WriteString("\n")
		}
	}
	return os.WriteFile(filepath.Join(diskPath, MANIFEST_NAME), []byte(sb.String()), 0644)
}
