package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/appengine/internal/cliconfig"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APPENGINE_READ_INPUT", "APPENGINE_READ_KEY", "APPENGINE_USAGE",
		"APPENGINE_LOG_LEVEL", "APPENGINE_TRACE", "APPENGINE_WATCH",
		"APPENGINE_WATCH_DEBOUNCE",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		envVars  map[string]string
		argv     []string
		expected cliconfig.Config
		wantFile bool
		wantErr  bool
	}{
		{
			name:     "defaults without file",
			expected: cliconfig.DefaultConfig(),
		},
		{
			name:     "file overrides defaults",
			file:     "read_input = true\nlog_level = \"info\"\n",
			wantFile: true,
			expected: func() cliconfig.Config {
				c := cliconfig.DefaultConfig()
				c.ReadInput = true
				c.LogLevel = "info"
				return c
			}(),
		},
		{
			name:     "env overrides file",
			file:     "log_level = \"info\"\n",
			envVars:  map[string]string{"APPENGINE_LOG_LEVEL": "error"},
			wantFile: true,
			expected: func() cliconfig.Config {
				c := cliconfig.DefaultConfig()
				c.LogLevel = "error"
				return c
			}(),
		},
		{
			name:     "flags override env and file",
			file:     "read_key = true\nwatch_debounce = \"1s\"\n",
			envVars:  map[string]string{"APPENGINE_READ_KEY": "true", "APPENGINE_TRACE": "1"},
			argv:     []string{"--read-key=false", "--watch-debounce=5ms"},
			wantFile: true,
			expected: func() cliconfig.Config {
				c := cliconfig.DefaultConfig()
				c.ReadKey = false
				c.Trace = true
				c.WatchDebounce = 5 * time.Millisecond
				return c
			}(),
		},
		{
			name:    "invalid level",
			argv:    []string{"--log-level=loud"},
			wantErr: true,
		},
		{
			name:    "invalid file",
			file:    "read_input = = 1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.toml")
			if tt.file != "" {
				if err := os.WriteFile(path, []byte(tt.file), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cfg := cliconfig.DefaultConfig()
			var cfgPath string
			cmd := &cobra.Command{}
			bindFlags(cmd.Flags(), &cfg, &cfgPath)
			argv := append([]string{"--config", path}, tt.argv...)
			if err := cmd.ParseFlags(argv); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			got, err := resolveConfig(cmd, &cfg, cfgPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got != "") != tt.wantFile {
				t.Errorf("config file = %q, wantFile %v", got, tt.wantFile)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer

	code, err := execute(
		[]string{"--read-key=false", "--read-input", "--", "--name", "gopher"},
		strings.NewReader("ping\n"), &out, &errOut,
	)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if out.String() != "ping\nHello, gopher!\n" {
		t.Errorf("out = %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("errOut = %q, want empty", errOut.String())
	}
}

func TestExecuteBadFlag(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer

	if _, err := execute([]string{"--no-such-flag"}, strings.NewReader(""), &out, &errOut); err == nil {
		t.Error("execute() expected error for unknown host flag")
	}
}

func TestExecuteRepeated(t *testing.T) {
	tests := []struct {
		name       string
		argv       []string
		input      string
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		{
			name:     "greets by name",
			argv:     []string{"--read-key=false", "--", "--name", "first"},
			wantCode: 0,
			wantOut:  "Hello, first!\n",
		},
		{
			name:       "rejected arguments fail",
			argv:       []string{"--read-key=false", "--", "--bogus"},
			wantCode:   -1,
			wantErrOut: "Usage:\n\nhello [--name NAME]",
		},
		{
			name:       "usage flag replaces message",
			argv:       []string{"--read-key=false", "--usage", "try --name", "--", "extra"},
			wantCode:   -1,
			wantErrOut: "Usage:\n\ntry --name",
		},
		{
			name:     "input flag applies to later runs",
			argv:     []string{"--read-key=false", "--read-input"},
			input:    "pong\n",
			wantCode: 0,
			wantOut:  "pong\nHello, world!\n",
		},
		{
			name:     "fresh streams each call",
			argv:     []string{"--read-key=false", "--", "--name", "second"},
			input:    "ignored\n",
			wantCode: 0,
			wantOut:  "Hello, second!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			var out, errOut bytes.Buffer

			code, err := execute(tt.argv, strings.NewReader(tt.input), &out, &errOut)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if out.String() != tt.wantOut {
				t.Errorf("out = %q, want %q", out.String(), tt.wantOut)
			}
			if !strings.HasPrefix(errOut.String(), tt.wantErrOut) {
				t.Errorf("errOut = %q, want prefix %q", errOut.String(), tt.wantErrOut)
			}
			if tt.wantErrOut == "" && errOut.Len() != 0 {
				t.Errorf("errOut = %q, want empty", errOut.String())
			}
		})
	}
}
