package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"APPENGINE_READ_INPUT":     "true",
				"APPENGINE_READ_KEY":       "false",
				"APPENGINE_USAGE":          "hello [lines]",
				"APPENGINE_LOG_LEVEL":      "debug",
				"APPENGINE_TRACE":          "1",
				"APPENGINE_WATCH":          "true",
				"APPENGINE_WATCH_DEBOUNCE": "250ms",
			},
			changed: map[string]bool{},
			initial: Config{ReadKey: true},
			expected: Config{
				ReadInput:     true,
				ReadKey:       false,
				Usage:         "hello [lines]",
				LogLevel:      "debug",
				Trace:         true,
				Watch:         true,
				WatchDebounce: 250 * time.Millisecond,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"APPENGINE_LOG_LEVEL":  "debug",
				"APPENGINE_READ_INPUT": "true",
			},
			changed:  map[string]bool{"log-level": true},
			initial:  Config{LogLevel: "error"},
			expected: Config{LogLevel: "error", ReadInput: true},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"APPENGINE_WATCH_DEBOUNCE": "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"APPENGINE_TRACE": "1",
			},
			changed:  map[string]bool{},
			expected: Config{Trace: true},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"APPENGINE_READ_KEY": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{ReadKey: true},
			expected: Config{ReadKey: false},
		},
		{
			name:     "empty env leaves config untouched",
			envVars:  map[string]string{},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"APPENGINE_READ_INPUT", "APPENGINE_READ_KEY", "APPENGINE_USAGE",
				"APPENGINE_LOG_LEVEL", "APPENGINE_TRACE", "APPENGINE_WATCH",
				"APPENGINE_WATCH_DEBOUNCE",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyEnvConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
