package config

// CustomFieldConfig maps a Pingboard custom field id to an index field.
type CustomFieldConfig struct {
	Name string `koanf:"name"`
	Type string `koanf:"type"`
}

// PingboardConfig holds Pingboard API credentials and the custom-field
// mapping table.
type PingboardConfig struct {
	ClientID     string                       `koanf:"client_id"`
	ClientSecret string                       `koanf:"client_secret"`
	CustomFields map[string]CustomFieldConfig `koanf:"custom_fields"`
}
