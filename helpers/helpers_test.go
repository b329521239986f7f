package helpers

import (
	// Go Internal Packages
	"bytes"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStruct(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintStruct(&buf, map[string]int{"orders": 3}))
	assert.Equal(t, "{\n  \"orders\": 3\n}\n", buf.String())

	assert.Error(t, PrintStruct(&buf, make(chan int)))
}
