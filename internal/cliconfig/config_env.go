package cliconfig

import "os"

// ApplyEnvConfig applies configuration from APPENGINE_* environment variables.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBoolFromString("read-input", os.Getenv("APPENGINE_READ_INPUT"), &cfg.ReadInput)
	s.setBoolFromString("read-key", os.Getenv("APPENGINE_READ_KEY"), &cfg.ReadKey)
	s.setString("usage", os.Getenv("APPENGINE_USAGE"), &cfg.Usage)
	s.setString("log-level", os.Getenv("APPENGINE_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("trace", os.Getenv("APPENGINE_TRACE"), &cfg.Trace)
	s.setBoolFromString("watch", os.Getenv("APPENGINE_WATCH"), &cfg.Watch)

	return s.setDuration("watch-debounce", os.Getenv("APPENGINE_WATCH_DEBOUNCE"), &cfg.WatchDebounce)
}
