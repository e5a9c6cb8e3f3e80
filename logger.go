package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// logError is the single logging convention for per-file events. The tag
// keeps the run log scannable by concern.
func logError(tag, file string, err error) {
	if err == nil {
		log.Printf("%s %s\n", tag, file)
	} else {
		log.Printf("%s %s: %s\n", tag, file, err.Error())
	}
}

// RunLogWriter sends the run log to a file whose name is derived from the
// mask at write time. When the derived name changes (a run crossing
// midnight, say) the current file is closed and the next write opens the
// new one. Open failures fall back to stderr so log output is never lost.
//
// Mask substitutions: %y year, %d day of year, %h hour, %m minute.
type RunLogWriter struct {
	mask     string
	lock     sync.Mutex
	file     *os.File
	fileName string
}

func NewRunLogWriter(mask string) (*RunLogWriter, error) {
	w := &RunLogWriter{mask: mask}
	if err := w.open(deriveLogName(mask)); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *RunLogWriter) open(name string) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	w.file = f
	w.fileName = name
	return nil
}

func (w *RunLogWriter) Write(b []byte) (int, error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if name := deriveLogName(w.mask); name != w.fileName {
		if w.file != nil {
			w.file.Close()
			w.file = nil
		}
		// Rotation failure falls through to stderr below.
		_ = w.open(name)
	}
	if w.file == nil {
		return os.Stderr.Write(b)
	}
	return w.file.Write(b)
}

func (w *RunLogWriter) Close() {
	w.lock.Lock()
	defer w.lock.Unlock()
	if w.file != nil {
		w.file.Close()
		w.file = nil
	}
}

func deriveLogName(mask string) string {
	t := time.Now()
	n := strings.ReplaceAll(mask, "%y", fmt.Sprintf("%d", t.Year()))
	n = strings.ReplaceAll(n, "%d", fmt.Sprintf("%d", t.YearDay()))
	n = strings.ReplaceAll(n, "%h", fmt.Sprintf("%d", t.Hour()))
	n = strings.ReplaceAll(n, "%m", fmt.Sprintf("%d", t.Minute()))
	return n
}
