// Package jsonl reads and writes line-delimited JSON files: one document per
// line, in slice order.
package jsonl

import (
	// Go Internal Packages
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"

	// External Packages
	"go.uber.org/zap"
)

const Extension = ".jsonl"

// Stats describe a completed file.
type Stats struct {
	Path    string `json:"path"`
	Bytes   int64  `json:"bytes"`
	Records int    `json:"records"`
}

func (s Stats) SizeMB() float64 {
	return float64(s.Bytes) / (1024 * 1024)
}

// WriteFile writes records to path, creating parent directories. A failed
// write leaves a partial file behind; callers re-run from scratch.
func WriteFile[T any](path string, records []T) (Stats, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Stats{}, errors.OutputDirErr(dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return Stats{}, errors.E(errors.IO, fmt.Sprintf("cannot create %s", path), err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	enc := json.NewEncoder(buf)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return Stats{}, errors.E(errors.IO, fmt.Sprintf("cannot encode record %d of %s", i, path), err)
		}
	}
	if err := buf.Flush(); err != nil {
		return Stats{}, errors.E(errors.IO, fmt.Sprintf("cannot flush %s", path), err)
	}
	if err := f.Close(); err != nil {
		return Stats{}, errors.E(errors.IO, fmt.Sprintf("cannot close %s", path), err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, errors.E(errors.IO, fmt.Sprintf("cannot stat %s", path), err)
	}
	return Stats{Path: path, Bytes: info.Size(), Records: len(records)}, nil
}

// Writer places one <entity>.jsonl file per dataset under Dir.
type Writer struct {
	Dir    string
	Logger *zap.Logger
}

func NewWriter(dir string, logger *zap.Logger) *Writer {
	return &Writer{Dir: dir, Logger: logger}
}

func (w *Writer) Path(entity string) string {
	return filepath.Join(w.Dir, entity+Extension)
}

func (w *Writer) WriteDataset(entity string, records []models.Keyed) (Stats, error) {
	stats, err := WriteFile(w.Path(entity), records)
	if err != nil {
		return Stats{}, err
	}
	w.Logger.Info("wrote dataset",
		zap.String("path", stats.Path),
		zap.Float64("size_mb", stats.SizeMB()),
		zap.Int("records", stats.Records),
	)
	return stats, nil
}
