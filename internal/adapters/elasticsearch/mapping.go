package elasticsearch

import (
	"encoding/json"
	"fmt"

	"github.com/elasticboard/elasticboard/internal/domain"
)

// BuildUserIndexMapping renders the index schema for the given field table.
// The properties map follows the table directly, so custom fields configured
// at startup become part of the schema.
func BuildUserIndexMapping(table *domain.FieldTable) (string, error) {
	mapping := map[string]any{
		"settings": map[string]any{
			"number_of_shards":   1,
			"number_of_replicas": 1,
		},
		"mappings": map[string]any{
			"properties": table.Properties(),
		},
	}

	body, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("failed to marshal index mapping: %w", err)
	}
	return string(body), nil
}
