package elasticsearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elasticboard/elasticboard/internal/domain"
)

func TestBuildUserIndexMapping(t *testing.T) {
	table := domain.DefaultFieldTable()
	table.AddCustomFields(map[string]domain.CustomField{
		"42": {Name: "team", Type: domain.FieldKeyword},
	})

	mapping, err := BuildUserIndexMapping(table)
	require.NoError(t, err)

	var decoded struct {
		Settings struct {
			Shards   int `json:"number_of_shards"`
			Replicas int `json:"number_of_replicas"`
		} `json:"settings"`
		Mappings struct {
			Properties map[string]struct {
				Type string `json:"type"`
			} `json:"properties"`
		} `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal([]byte(mapping), &decoded))

	assert.Equal(t, 1, decoded.Settings.Shards)
	assert.Equal(t, 1, decoded.Settings.Replicas)

	props := decoded.Mappings.Properties
	assert.Equal(t, "date", props["@timestamp"].Type)
	assert.Equal(t, "geo_point", props["location"].Type)
	assert.Equal(t, "keyword", props["email"].Type)
	assert.Equal(t, "text", props["bio"].Type)
	assert.Equal(t, "keyword", props["team"].Type)
}
