package domain

import (
	"fmt"
	"time"
)

// FormatError reports a field value that is present but not parsable.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

const startDateLayout = "2006-01-02"

// Shape maps a raw Pingboard record into an index document:
//
//  1. A present, non-null start_date becomes the @timestamp field at
//     midnight UTC; an absent or null start_date leaves the field out.
//  2. Every text or keyword entry in the field table copies the raw field of
//     the same name, if present.
//  3. Every configured custom field id is looked up in the record's
//     custom_fields map and written under its output name when truthy.
//
// The location field is not produced here; geocoding enrichment attaches it
// after shaping.
func Shape(raw RawUser, table *FieldTable) (Document, error) {
	doc := Document{}

	if s, ok := raw.StartDate(); ok {
		ts, err := time.Parse(startDateLayout, s)
		if err != nil {
			return nil, &FormatError{Field: "start_date", Value: s, Err: err}
		}
		doc[TimestampField] = ts
	}

	for name, ft := range table.fields {
		if ft != FieldText && ft != FieldKeyword {
			continue
		}
		if v, ok := raw[name]; ok {
			doc[name] = v
		}
	}

	custom := raw.CustomFields()
	for id, name := range table.custom {
		if v, ok := custom[id]; ok && truthy(v) {
			doc[name] = v
		}
	}

	return doc, nil
}

// truthy reports whether a custom field value should be written into the
// document. Empty strings, zero numbers, false, nil and empty collections
// are skipped.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
