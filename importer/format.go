package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atripati/altetudegear/domain"
)

// Format selects the parser applied to raw import input.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// DetectFormat infers the input format from a file name's extension.
func DetectFormat(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, true
	case ".csv":
		return FormatCSV, true
	default:
		return "", false
	}
}

// Parse dispatches input to the parser for the given format.
func Parse(format Format, input string) ([]domain.PartialProduct, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(input)
	case FormatCSV:
		return ParseCSV(input)
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}
}
