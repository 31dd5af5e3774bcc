package domain

import (
	"strconv"
	"strings"
)

// RawUser is a user record as returned by the Pingboard API. The field set
// is open-ended (profile fields, custom fields, address components), so the
// record stays a map and typed access goes through the helper methods.
type RawUser map[string]any

// ID returns the user identifier as a string. Pingboard serves ids both as
// strings and as numbers.
func (u RawUser) ID() string {
	switch v := u["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// StartDate returns the start_date field and whether it is present and
// non-null.
func (u RawUser) StartDate() (string, bool) {
	v, ok := u["start_date"]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// CustomFields returns the nested custom_fields mapping, or nil if the
// record has none.
func (u RawUser) CustomFields() map[string]any {
	m, _ := u["custom_fields"].(map[string]any)
	return m
}

// Address joins the named address-component fields into a single free-text
// address, in the given order. Missing or empty components are skipped.
func (u RawUser) Address(fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		if s, ok := u[name].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
