package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		ok       bool
	}{
		{"products.json", FormatJSON, true},
		{"products.JSON", FormatJSON, true},
		{"drop/products.csv", FormatCSV, true},
		{"products.txt", "", false},
		{"products", "", false},
	}
	for _, tt := range tests {
		got, ok := DetectFormat(tt.filename)
		assert.Equal(t, tt.ok, ok, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}
}

func TestParseDispatch(t *testing.T) {
	records, err := Parse(FormatJSON, `{"name": "A"}`)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = Parse(FormatCSV, "name\nA")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = Parse("yaml", "name: A")
	assert.Error(t, err)
}
