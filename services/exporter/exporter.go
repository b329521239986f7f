// Package exporter hands completed datasets to the line-delimited files and
// to every enabled sink, in generation order.
package exporter

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"
	jsonl "psp-datagen/repositories/jsonl"
	generator "psp-datagen/services/generator"

	// External Packages
	"go.uber.org/zap"
)

// Sink receives a whole dataset at once.
type Sink interface {
	Name() string
	Export(ctx context.Context, entity string, records []models.Keyed) error
}

type FileWriter interface {
	WriteDataset(entity string, records []models.Keyed) (jsonl.Stats, error)
}

type ManifestStore interface {
	Save(ctx context.Context, runID string, entries map[string]any) error
}

type Exporter struct {
	Logger    *zap.Logger
	Files     FileWriter
	Sinks     []Sink
	Manifests ManifestStore
}

func NewExporter(logger *zap.Logger, files FileWriter, manifests ManifestStore, sinks ...Sink) *Exporter {
	return &Exporter{Logger: logger, Files: files, Sinks: sinks, Manifests: manifests}
}

// Summary describes one generation run.
type Summary struct {
	RunID     string                 `json:"run_id"`
	Seed      int64                  `json:"seed"`
	Files     map[string]jsonl.Stats `json:"files"`
	Integrity []string               `json:"integrity"`
}

// Export writes every dataset, then fans it out to the sinks. The first
// failure stops the run; files already written stay on disk.
func (e *Exporter) Export(ctx context.Context, runID string, seed int64, ds *generator.Datasets) (*Summary, error) {
	summary := &Summary{
		RunID:     runID,
		Seed:      seed,
		Files:     make(map[string]jsonl.Stats, len(models.Entities)),
		Integrity: ds.IntegritySummary(),
	}

	for _, c := range ds.Collections() {
		stats, err := e.Files.WriteDataset(c.Entity, c.Records)
		if err != nil {
			return nil, err
		}
		summary.Files[c.Entity] = stats

		for _, sink := range e.Sinks {
			if err := sink.Export(ctx, c.Entity, c.Records); err != nil {
				return nil, errors.E(errors.Sink, fmt.Sprintf("%s export of %s failed", sink.Name(), c.Entity), err)
			}
		}
	}

	if e.Manifests != nil {
		entries := map[string]any{
			"seed":      seed,
			"integrity": summary.Integrity,
		}
		for entity, stats := range summary.Files {
			entries[entity] = stats
		}
		if err := e.Manifests.Save(ctx, runID, entries); err != nil {
			return nil, errors.E(errors.Sink, "cannot save run manifest", err)
		}
		e.Logger.Info("saved run manifest", zap.String("run_id", runID))
	}

	return summary, nil
}
