// Package config loads the elasticboard configuration document and the
// operational settings taken from environment variables.
package config

// Config is the parsed configuration document.
type Config struct {
	Pingboard     PingboardConfig     `koanf:"pingboard"`
	Maps          MapsConfig          `koanf:"maps"`
	Elasticsearch ElasticsearchConfig `koanf:"elasticsearch"`
}
