package esutil

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// FrameLog appends frame rates to <directory>/<cpu brand>/<name>.txt, one
// line each time the whole-number rate changes.
type FrameLog struct {
	File *os.File

	CurrentFPS float64
}

func NewFrameLog(directory, name string) (*FrameLog, error) {
	var brand string = strings.ReplaceAll(strings.TrimSpace(cpuid.CPU.BrandName), string(filepath.Separator), "_")
	if brand == "" {
		brand = "unknown"
	}

	var path string = filepath.Join(directory, brand)
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, fmt.Errorf("frame log: %w", err)
	}

	path = filepath.Join(path, name+".txt")
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("frame log: %w", err)
	}

	tracer().Debugf("frame log at %s", path)

	return &FrameLog{File: file}, nil
}

// Log records framerate if it is at least 1 and differs from the last
// recorded whole-number rate.
func (log *FrameLog) Log(framerate float64) error {
	var whole float64 = math.Floor(framerate)
	if whole <= 0 || whole == log.CurrentFPS {
		return nil
	}

	log.CurrentFPS = whole
	_, err := fmt.Fprintln(log.File, whole)

	return err
}

func (log *FrameLog) Close() error {
	return log.File.Close()
}
