package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldTable(t *testing.T) {
	table := DefaultFieldTable()

	ft, ok := table.Type("email")
	require.True(t, ok)
	assert.Equal(t, FieldKeyword, ft)

	ft, ok = table.Type("bio")
	require.True(t, ok)
	assert.Equal(t, FieldText, ft)

	ft, ok = table.Type("location")
	require.True(t, ok)
	assert.Equal(t, FieldGeoPoint, ft)

	_, ok = table.Type("unknown")
	assert.False(t, ok)
}

func TestFieldTable_AddCustomFields(t *testing.T) {
	t.Run("extends the table", func(t *testing.T) {
		table := DefaultFieldTable()
		table.AddCustomFields(map[string]CustomField{
			"42": {Name: "team", Type: FieldKeyword},
		})

		ft, ok := table.Type("team")
		require.True(t, ok)
		assert.Equal(t, FieldKeyword, ft)
	})

	t.Run("last write wins on output name collision", func(t *testing.T) {
		table := DefaultFieldTable()
		table.AddCustomFields(map[string]CustomField{
			"1": {Name: "team", Type: FieldText},
			"2": {Name: "team", Type: FieldKeyword},
		})

		// ids apply in sorted order, so "2" wins
		ft, ok := table.Type("team")
		require.True(t, ok)
		assert.Equal(t, FieldKeyword, ft)
	})
}

func TestFieldTable_Properties(t *testing.T) {
	table := DefaultFieldTable()
	table.AddCustomFields(map[string]CustomField{
		"42": {Name: "team", Type: FieldKeyword},
	})

	props := table.Properties()

	assert.Equal(t, map[string]any{"type": "date"}, props[TimestampField])
	assert.Equal(t, map[string]any{"type": "geo_point"}, props["location"])
	assert.Equal(t, map[string]any{"type": "keyword"}, props["team"])
	assert.Equal(t, map[string]any{"type": "text"}, props["bio"])
}
