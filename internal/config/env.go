package config

import (
	"fmt"
	"os"
	"regexp"
)

// envPattern matches the configuration placeholder syntax
// <%= ENV['VAR'] %>suffix.
var envPattern = regexp.MustCompile(`^<%= ENV\['([^']+)'\] %>(.*)$`)

// resolveEnv expands an environment placeholder in a scalar value. Values
// that do not use the placeholder syntax pass through unchanged.
func resolveEnv(key, value string) (string, error) {
	m := envPattern.FindStringSubmatch(value)
	if m == nil {
		return value, nil
	}
	env, ok := os.LookupEnv(m[1])
	if !ok {
		return "", &ConfigError{Key: key, Reason: fmt.Sprintf("environment variable %s is not set", m[1])}
	}
	return env + m[2], nil
}
