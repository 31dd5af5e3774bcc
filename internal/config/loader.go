package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads, resolves and validates the configuration document at path.
// Scalar values using the <%= ENV['VAR'] %> placeholder syntax are expanded
// from the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := resolveAll(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveAll expands environment placeholders in every string scalar of the
// document, including elements of string lists.
func resolveAll(k *koanf.Koanf) error {
	for key, value := range k.All() {
		switch v := value.(type) {
		case string:
			resolved, err := resolveEnv(key, v)
			if err != nil {
				return err
			}
			if resolved != v {
				if err := k.Set(key, resolved); err != nil {
					return fmt.Errorf("failed to set config %s: %w", key, err)
				}
			}
		case []any:
			changed := false
			items := make([]any, len(v))
			for i, item := range v {
				s, ok := item.(string)
				if !ok {
					items[i] = item
					continue
				}
				resolved, err := resolveEnv(key, s)
				if err != nil {
					return err
				}
				if resolved != s {
					changed = true
				}
				items[i] = resolved
			}
			if changed {
				if err := k.Set(key, items); err != nil {
					return fmt.Errorf("failed to set config %s: %w", key, err)
				}
			}
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.Pingboard.ClientID == "" {
		return &ConfigError{Key: "pingboard.client_id", Reason: "required"}
	}
	if c.Pingboard.ClientSecret == "" {
		return &ConfigError{Key: "pingboard.client_secret", Reason: "required"}
	}
	for id, cf := range c.Pingboard.CustomFields {
		if cf.Name == "" {
			return &ConfigError{Key: "pingboard.custom_fields." + id + ".name", Reason: "required"}
		}
		if cf.Type != "text" && cf.Type != "keyword" {
			return &ConfigError{
				Key:    "pingboard.custom_fields." + id + ".type",
				Reason: fmt.Sprintf("unsupported type %q", cf.Type),
			}
		}
	}
	if c.Maps.Service == ServiceGoogle && c.Maps.Key == "" {
		return &ConfigError{Key: "maps.key", Reason: "required"}
	}
	return nil
}
