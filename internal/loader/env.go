package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment variables read by EnvLoader.
const EnvPrefix = "KITTYCONF_"

// EnvLoader loads configuration from environment variables.
// KITTYCONF_BASE_URL maps to base_url, and so on.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates an environment loader for prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderFrom creates a loader over a fixed environment, for tests.
func NewEnvLoaderFrom(prefix string, env []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: func() []string { return env }}
}

// Load returns every prefixed variable under its lower-cased name.
// Empty values are treated as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, l.prefix))
		if key == "" {
			continue
		}
		config[key] = parseValue(value)
	}
	return config, nil
}

// parseValue keeps integers as int64 so they decode into numeric fields.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}
