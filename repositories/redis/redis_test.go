package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"testing"

	// Local Packages
	models "psp-datagen/models"

	// External Packages
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestDeadLetterQueueSend(t *testing.T) {
	mr, client := newTestClient(t)
	dlq := NewDeadLetterQueue(client, zap.NewNop(), "psp:dlq")
	ctx := context.Background()

	require.NoError(t, dlq.Send(ctx, nil))

	records := []models.Record{
		{Key: []byte("m_1"), Value: []byte(`{"merchant_id":"m_1"}`), Topic: "psp.merchants"},
		{Key: []byte("m_2"), Value: []byte(`{"merchant_id":"m_2"}`), Topic: "psp.merchants"},
	}
	require.NoError(t, dlq.Send(ctx, records))

	n, err := dlq.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stored, err := mr.List("psp:dlq")
	require.NoError(t, err)
	var first deadLetter
	require.NoError(t, json.Unmarshal([]byte(stored[0]), &first))
	assert.Equal(t, "m_1", first.Key)
	assert.Equal(t, "psp.merchants", first.Topic)
	assert.JSONEq(t, `{"merchant_id":"m_1"}`, string(first.Value))
}

func TestDeadLetterQueueFailsWhenRedisIsDown(t *testing.T) {
	mr, client := newTestClient(t)
	dlq := NewDeadLetterQueue(client, zap.NewNop(), "psp:dlq")
	mr.Close()

	err := dlq.Send(context.Background(), []models.Record{{Key: []byte("k"), Value: []byte(`{}`)}})
	assert.Error(t, err)
}

func TestManifestSaveAndLoad(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewManifestRepository(client)
	ctx := context.Background()

	type fileStats struct {
		Records int   `json:"records"`
		Bytes   int64 `json:"bytes"`
	}
	err := repo.Save(ctx, "run-1", map[string]any{
		"seed":      42,
		"merchants": fileStats{Records: 100, Bytes: 20480},
	})
	require.NoError(t, err)
	assert.True(t, mr.Exists(ManifestKey("run-1")))

	var got fileStats
	require.NoError(t, repo.Load(ctx, "run-1", "merchants", &got))
	assert.Equal(t, fileStats{Records: 100, Bytes: 20480}, got)

	var seed int64
	require.NoError(t, repo.Load(ctx, "run-1", "seed", &seed))
	assert.Equal(t, int64(42), seed)

	assert.ErrorIs(t, repo.Load(ctx, "run-2", "seed", &seed), redis.Nil)
}

func TestConnectFailsFast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Connect(ctx, "127.0.0.1:1", "")
	assert.Error(t, err)
}
