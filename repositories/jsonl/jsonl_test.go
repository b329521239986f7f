package jsonl

import (
	// Go Internal Packages
	"bytes"
	"os"
	"path/filepath"
	"testing"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteDatasetCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	w := NewWriter(dir, zap.NewNop())

	records := []models.Keyed{
		models.Customer{CustomerID: "c_1", EmailHash: "hash_A", PhoneHash: "hash_B", CustomerType: "vip", CreatedAt: "2023-01-01T00:00:00Z"},
		models.Customer{CustomerID: "c_2", EmailHash: "hash_C", PhoneHash: "hash_D", CustomerType: "regular", CreatedAt: "2023-01-02T00:00:00Z"},
	}
	stats, err := w.WriteDataset(models.EntityCustomers, records)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "customers.jsonl"), stats.Path)
	assert.Equal(t, 2, stats.Records)

	raw, err := os.ReadFile(stats.Path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(raw)), stats.Bytes)

	lines := bytes.Split(bytes.TrimRight(raw, "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t,
		`{"customer_id":"c_1","email_hash":"hash_A","phone_hash":"hash_B","customer_type":"vip","created_at":"2023-01-01T00:00:00Z"}`,
		string(lines[0]))
}

func TestNullableFieldsAreWrittenAsNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disputes.jsonl")
	_, err := WriteFile(path, []models.Dispute{{DisputeID: "cb_1", TxnID: "txn_1"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"closed_at":null`)

	back, err := ReadFile[models.Dispute](path)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Nil(t, back[0].ClosedAt)
}

func TestWriteFileFailsWhenDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := WriteFile(filepath.Join(blocker, "out.jsonl"), []int{1})
	require.Error(t, err)
	assert.True(t, errors.Is(errors.IO, err))
}

func TestReadFileSkipsBlankLinesAndReportsBadOnes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"order_id\":\"ord_1\"}\n\n{\"order_id\":\"ord_2\"}\n"), 0o644))

	orders, err := ReadFile[models.Order](path)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord_2", orders[1].OrderID)

	require.NoError(t, os.WriteFile(path, []byte("{\"order_id\":\"ord_1\"}\nnot json\n"), 0o644))
	_, err = ReadFile[models.Order](path)
	require.Error(t, err)
	assert.True(t, errors.Is(errors.Invalid, err))
	assert.Contains(t, err.Error(), "orders.jsonl:2")

	_, err = ReadFile[models.Order](filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.True(t, errors.Is(errors.IO, err))
}
