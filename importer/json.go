package importer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/atripati/altetudegear/domain"
)

// ParseJSON decodes a single product object or an array of products. Any
// other shape is a parse error. No per-field coercion happens here; the
// output feeds the normalizer as-is.
func ParseJSON(input string) ([]domain.PartialProduct, error) {
	data := bytes.TrimSpace([]byte(input))
	if len(data) == 0 {
		return nil, domain.NewParseError("JSON input is empty.")
	}

	switch data[0] {
	case '[':
		var records []domain.PartialProduct
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, domain.NewParseError(fmt.Sprintf("Unable to parse JSON: %v", err))
		}
		return records, nil
	case '{':
		var record domain.PartialProduct
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, domain.NewParseError(fmt.Sprintf("Unable to parse JSON: %v", err))
		}
		return []domain.PartialProduct{record}, nil
	default:
		return nil, domain.NewParseError("JSON must describe a product object or an array of products.")
	}
}
