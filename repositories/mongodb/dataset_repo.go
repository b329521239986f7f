package mongodb

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	models "psp-datagen/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DatasetRepository stores each dataset in a collection named after the
// entity. Documents use the primary key as _id and are upserted, so a rerun
// with the same seed replaces the documents of the previous run.
type DatasetRepository struct {
	client    *mongo.Client
	database  string
	batchSize int
	logger    *zap.Logger
}

func NewDatasetRepository(client *mongo.Client, database string, batchSize int, logger *zap.Logger) *DatasetRepository {
	return &DatasetRepository{client: client, database: database, batchSize: batchSize, logger: logger}
}

func (r *DatasetRepository) Name() string {
	return "mongo"
}

// upserts replaces each record by _id, inserting it when absent.
func upserts(records []models.Keyed) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(records))
	for _, rec := range records {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": rec.PrimaryKey()}).
			SetReplacement(rec).
			SetUpsert(true))
	}
	return writes
}

// Export upserts records in batches, unordered within a batch.
func (r *DatasetRepository) Export(ctx context.Context, entity string, records []models.Keyed) error {
	collection := r.client.Database(r.database).Collection(entity)
	opts := options.BulkWrite().SetOrdered(false)

	var upserted, replaced int64
	for start := 0; start < len(records); start += r.batchSize {
		end := min(start+r.batchSize, len(records))
		res, err := collection.BulkWrite(ctx, upserts(records[start:end]), opts)
		if err != nil {
			return fmt.Errorf("failed to write %s batch at %d: %w", entity, start, err)
		}
		upserted += res.UpsertedCount
		replaced += res.MatchedCount
	}

	r.logger.Info("upserted dataset",
		zap.String("collection", entity),
		zap.Int64("inserted", upserted),
		zap.Int64("replaced", replaced),
	)
	return nil
}
