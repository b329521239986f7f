package generator

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	errors "psp-datagen/errors"
)

const (
	BytesPerMB       = 1024 * 1024
	DefaultBatchSize = 100
)

// Dataset is the in-memory output of one entity run.
type Dataset[T any] struct {
	Entity         string
	Records        []T
	EstimatedBytes int64
}

func (d *Dataset[T]) SizeMB() float64 {
	return float64(d.EstimatedBytes) / BytesPerMB
}

// build appends records produced by next until the estimated serialized size
// reaches targetMB. The size is only checked every batchSize records, so the
// result can overshoot the target by up to one batch.
func build[T any](ctx context.Context, entity string, targetMB float64, batchSize int, next func() (T, error)) (*Dataset[T], error) {
	if targetMB <= 0 {
		return nil, errors.E(errors.Config, fmt.Sprintf("%s: target size must be positive, got %v", entity, targetMB), nil)
	}
	if batchSize <= 0 {
		return nil, errors.E(errors.Config, fmt.Sprintf("%s: batch size must be positive, got %d", entity, batchSize), nil)
	}

	target := int64(targetMB * BytesPerMB)
	ds := &Dataset[T]{Entity: entity}
	for {
		rec, err := next()
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, errors.E(errors.Internal, fmt.Sprintf("%s: cannot encode record", entity), err)
		}
		ds.Records = append(ds.Records, rec)
		// one JSON document plus its newline, as the line-delimited file will hold it
		ds.EstimatedBytes += int64(len(raw)) + 1

		if len(ds.Records)%batchSize != 0 {
			continue
		}
		if ds.EstimatedBytes >= target {
			return ds, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}
