package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "psp-datagen/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type DeadLetterQueue struct {
	client   *redis.Client
	logger   *zap.Logger
	listName string
}

func NewDeadLetterQueue(client *redis.Client, logger *zap.Logger, listName string) *DeadLetterQueue {
	return &DeadLetterQueue{client: client, logger: logger, listName: listName}
}

// deadLetter is the stored form of a record kafka refused.
type deadLetter struct {
	Topic string          `json:"topic"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Send pushes the refused records onto the dead letter list. It fails on the
// first record redis will not take so the caller never loses data silently.
func (r *DeadLetterQueue) Send(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		jsonData, err := json.Marshal(deadLetter{Topic: record.Topic, Key: string(record.Key), Value: record.Value})
		if err != nil {
			return fmt.Errorf("failed to marshal record %s: %w", record.Key, err)
		}
		if err := r.client.RPush(ctx, r.listName, jsonData).Err(); err != nil {
			return fmt.Errorf("failed to store record %s: %w", record.Key, err)
		}
	}

	r.logger.Info("sent records to dead letter queue", zap.String("list", r.listName), zap.Int("count", len(records)))
	return nil
}

// Len reports how many records wait on the list.
func (r *DeadLetterQueue) Len(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, r.listName).Result()
}
