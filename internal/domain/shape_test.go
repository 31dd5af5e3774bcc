package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	t.Run("start date becomes timestamp at midnight", func(t *testing.T) {
		raw := RawUser{
			"id":         "u1",
			"start_date": "2020-01-15",
			"first_name": "A",
			"email":      "a@x.com",
		}

		doc, err := Shape(raw, DefaultFieldTable())

		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), doc[TimestampField])
		assert.Equal(t, "A", doc["first_name"])
		assert.Equal(t, "a@x.com", doc["email"])
	})

	t.Run("null start date omits timestamp", func(t *testing.T) {
		raw := RawUser{
			"id":         "u1",
			"start_date": nil,
			"email":      "a@x.com",
		}

		doc, err := Shape(raw, DefaultFieldTable())

		require.NoError(t, err)
		assert.NotContains(t, doc, TimestampField)
	})

	t.Run("absent start date omits timestamp", func(t *testing.T) {
		raw := RawUser{"id": "u1", "email": "a@x.com"}

		doc, err := Shape(raw, DefaultFieldTable())

		require.NoError(t, err)
		assert.NotContains(t, doc, TimestampField)
	})

	t.Run("unparsable start date fails", func(t *testing.T) {
		raw := RawUser{"id": "u1", "start_date": "15/01/2020"}

		doc, err := Shape(raw, DefaultFieldTable())

		assert.Nil(t, doc)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "start_date", formatErr.Field)
		assert.Equal(t, "15/01/2020", formatErr.Value)
	})

	t.Run("only text and keyword fields are copied", func(t *testing.T) {
		raw := RawUser{
			"id":        "u1",
			"bio":       "hello",
			"job_title": "Engineer",
			"location":  "should not be copied",
			"unmapped":  "ignored",
		}

		doc, err := Shape(raw, DefaultFieldTable())

		require.NoError(t, err)
		assert.Equal(t, "hello", doc["bio"])
		assert.Equal(t, "Engineer", doc["job_title"])
		assert.NotContains(t, doc, LocationField)
		assert.NotContains(t, doc, "unmapped")
	})

	t.Run("custom field remapped to configured name", func(t *testing.T) {
		table := DefaultFieldTable()
		table.AddCustomFields(map[string]CustomField{
			"42": {Name: "team", Type: FieldKeyword},
		})
		raw := RawUser{
			"id":            "u1",
			"custom_fields": map[string]any{"42": "Platform"},
		}

		doc, err := Shape(raw, table)

		require.NoError(t, err)
		assert.Equal(t, "Platform", doc["team"])
	})

	t.Run("falsy custom field values are skipped", func(t *testing.T) {
		table := DefaultFieldTable()
		table.AddCustomFields(map[string]CustomField{
			"1": {Name: "team", Type: FieldKeyword},
			"2": {Name: "floor", Type: FieldKeyword},
			"3": {Name: "projects", Type: FieldText},
		})
		raw := RawUser{
			"id": "u1",
			"custom_fields": map[string]any{
				"1": "",
				"2": float64(0),
				"3": []any{},
			},
		}

		doc, err := Shape(raw, table)

		require.NoError(t, err)
		assert.NotContains(t, doc, "team")
		assert.NotContains(t, doc, "floor")
		assert.NotContains(t, doc, "projects")
	})

	t.Run("shaping is deterministic", func(t *testing.T) {
		table := DefaultFieldTable()
		table.AddCustomFields(map[string]CustomField{
			"42": {Name: "team", Type: FieldKeyword},
		})
		raw := RawUser{
			"id":            "u1",
			"start_date":    "2021-06-01",
			"first_name":    "A",
			"last_name":     "B",
			"email":         "a@x.com",
			"custom_fields": map[string]any{"42": "Platform"},
		}

		first, err := Shape(raw, table)
		require.NoError(t, err)
		second, err := Shape(raw, table)
		require.NoError(t, err)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON)
	})
}
