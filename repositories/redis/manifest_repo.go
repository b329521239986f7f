package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// External Packages
	"github.com/redis/go-redis/v9"
)

const manifestKeyPrefix = "psp:run:"

// ManifestRepository keeps one hash per generation run, field per entity.
type ManifestRepository struct {
	client *redis.Client
}

func NewManifestRepository(client *redis.Client) *ManifestRepository {
	return &ManifestRepository{client: client}
}

func ManifestKey(runID string) string {
	return manifestKeyPrefix + runID
}

// Save stores every entry JSON-encoded under its field name.
func (r *ManifestRepository) Save(ctx context.Context, runID string, entries map[string]any) error {
	values := make(map[string]interface{}, len(entries))
	for field, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal manifest field %s: %w", field, err)
		}
		values[field] = string(raw)
	}
	return r.client.HSet(ctx, ManifestKey(runID), values).Err()
}

// Load decodes a single field of a stored manifest into out.
func (r *ManifestRepository) Load(ctx context.Context, runID, field string, out any) error {
	raw, err := r.client.HGet(ctx, ManifestKey(runID), field).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}
