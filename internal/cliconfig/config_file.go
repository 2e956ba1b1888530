package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types. Pointers distinguish
// "absent" from false.
type FileConfig struct {
	ReadInput     *bool  `toml:"read_input"`
	ReadKey       *bool  `toml:"read_key"`
	Usage         string `toml:"usage"`
	LogLevel      string `toml:"log_level"`
	Trace         *bool  `toml:"trace"`
	Watch         *bool  `toml:"watch"`
	WatchDebounce string `toml:"watch_debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.appengine/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".appengine", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBool("read-input", fc.ReadInput, &cfg.ReadInput)
	s.setBool("read-key", fc.ReadKey, &cfg.ReadKey)
	s.setString("usage", fc.Usage, &cfg.Usage)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("trace", fc.Trace, &cfg.Trace)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return s.setDuration("watch-debounce", fc.WatchDebounce, &cfg.WatchDebounce)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
