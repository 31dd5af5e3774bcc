package config

// ServiceGoogle is the only geocoding service currently supported.
const ServiceGoogle = "google"

// MapsConfig holds the geocoding service configuration. The whole section is
// optional; an unconfigured section disables geocoding.
type MapsConfig struct {
	Service string   `koanf:"service"`
	Key     string   `koanf:"key"`
	Fields  []string `koanf:"fields"`
}

// IsConfigured returns true if a supported geocoding service is configured.
func (c *MapsConfig) IsConfigured() bool {
	return c.Service == ServiceGoogle && c.Key != ""
}
