package domain

import "sort"

// FieldType is the Elasticsearch type a field is indexed as.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldKeyword  FieldType = "keyword"
	FieldGeoPoint FieldType = "geo_point"
)

// CustomField describes how a Pingboard custom field is mapped into the
// index.
type CustomField struct {
	Name string
	Type FieldType
}

// FieldTable maps output field names to their index types, together with the
// custom-field ids remapped into it. The table is built once during startup
// configuration and read-only afterwards.
type FieldTable struct {
	fields map[string]FieldType
	custom map[string]string // custom field id -> output field name
}

// DefaultFieldTable returns the static profile-field table.
func DefaultFieldTable() *FieldTable {
	return &FieldTable{
		fields: map[string]FieldType{
			"bio":        FieldText,
			"email":      FieldKeyword,
			"first_name": FieldKeyword,
			"job_title":  FieldText,
			"last_name":  FieldKeyword,
			"locale":     FieldKeyword,
			"location":   FieldGeoPoint,
			"nickname":   FieldKeyword,
			"time_zone":  FieldKeyword,
		},
		custom: map[string]string{},
	}
}

// AddCustomFields extends the table with configured custom fields. Ids are
// applied in sorted order; on an output-name collision the last write wins.
func (t *FieldTable) AddCustomFields(fields map[string]CustomField) {
	ids := make([]string, 0, len(fields))
	for id := range fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cf := fields[id]
		t.fields[cf.Name] = cf.Type
		t.custom[id] = cf.Name
	}
}

// Type returns the index type for an output field name.
func (t *FieldTable) Type(name string) (FieldType, bool) {
	ft, ok := t.fields[name]
	return ft, ok
}

// Properties returns the Elasticsearch properties map for the table,
// including the @timestamp date field.
func (t *FieldTable) Properties() map[string]any {
	props := make(map[string]any, len(t.fields)+1)
	props[TimestampField] = map[string]any{"type": "date"}
	for name, ft := range t.fields {
		props[name] = map[string]any{"type": string(ft)}
	}
	return props
}
