package loader

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultBaseURL is the address share links point at.
const DefaultBaseURL = "https://kittyconf.dev/"

// DefaultMaxURLLength is the default share link length warning threshold.
const DefaultMaxURLLength = 2000

// AppConfig is kittyconf's own configuration.
type AppConfig struct {
	// BaseURL is the page share links are built on.
	BaseURL string `toml:"base_url"`

	// DataDir holds the persisted session. Empty means DataDir().
	DataDir string `toml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// MaxURLLength is the share link length above which a warning is shown.
	MaxURLLength int `toml:"max_url_length"`

	// Output is the default kitty.conf path for generate. Empty means stdout.
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		BaseURL:      DefaultBaseURL,
		LogLevel:     "warn",
		MaxURLLength: DefaultMaxURLLength,
	}
}

// Options controls Load.
type Options struct {
	// FS is the file system for the config file. Nil means the OS.
	FS FileSystem

	// Path is the config file. Empty means ConfigDir()/config.toml.
	Path string

	// Env is the environment source. Nil means the process environment.
	Env Loader
}

// Load builds the configuration from defaults, the TOML file and the
// environment, in increasing priority. A missing file is not an error.
func Load(opts Options) (AppConfig, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = DefaultFS()
	}

	path := opts.Path
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return AppConfig{}, err
		}
		path = filepath.Join(dir, ConfigFileName)
	}

	env := opts.Env
	if env == nil {
		env = NewEnvLoader(EnvPrefix)
	}

	merged := make(map[string]any)
	for _, l := range []Loader{NewTOMLLoaderWithFS(fsys, path), env} {
		layer, err := l.Load()
		if err != nil {
			return AppConfig{}, err
		}
		merged = Merge(merged, layer)
	}

	cfg, err := decode(merged)
	if err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// decode fills a default AppConfig from a merged configuration map.
func decode(m map[string]any) (AppConfig, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return AppConfig{}, fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c AppConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q is not an absolute URL", ErrInvalidConfig, c.BaseURL)
	}
	if u.Fragment != "" {
		return fmt.Errorf("%w: base_url %q has a fragment", ErrInvalidConfig, c.BaseURL)
	}
	if c.MaxURLLength <= 0 {
		return fmt.Errorf("%w: max_url_length must be positive", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c AppConfig) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// ResolveDataDir returns DataDir, or the platform default when unset.
func (c AppConfig) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DataDir()
}
