package config

// ElasticsearchConfig holds Elasticsearch connection configuration. The
// section is optional; with no hosts configured, indexing is a no-op.
type ElasticsearchConfig struct {
	Hosts  []string `koanf:"hosts"`
	User   string   `koanf:"user"`
	Secret string   `koanf:"secret"`
}

// IsConfigured returns true if at least one host is configured.
func (c *ElasticsearchConfig) IsConfigured() bool {
	return len(c.Hosts) > 0
}

// HasCredentials returns true if authentication credentials are configured.
func (c *ElasticsearchConfig) HasCredentials() bool {
	return c.User != "" && c.Secret != ""
}
