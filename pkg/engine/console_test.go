package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestNewConsole_Defaults(t *testing.T) {
	c := NewConsole(&minimalApp{})

	if c.Type() != DefaultConsole {
		t.Errorf("Type() = %v, want DefaultConsole", c.Type())
	}
	if c.ShouldReadInput() {
		t.Error("console should not read input by default")
	}
	if !c.ShouldReadKey() {
		t.Error("console should wait for a key by default")
	}
	if got := c.Arguments(); got == nil || len(got) != 0 {
		t.Errorf("Arguments() before any run = %v, want empty", got)
	}
}

func TestNewConsole_FlagsOverridable(t *testing.T) {
	c := NewConsole(&minimalApp{}, WithReadInput(true), WithReadKey(false))
	if !c.ShouldReadInput() || c.ShouldReadKey() {
		t.Errorf("options ignored: input=%v key=%v", c.ShouldReadInput(), c.ShouldReadKey())
	}

	c.SetShouldReadInput(false)
	c.SetShouldReadKey(true)
	if c.ShouldReadInput() || !c.ShouldReadKey() {
		t.Errorf("setters ignored: input=%v key=%v", c.ShouldReadInput(), c.ShouldReadKey())
	}
}

func TestIsConsole(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"typed nil embedding console", (*testApp)(nil), true},
		{"console pointer", (*Console)(nil), true},
		{"console value", Console{}, true},
		{"bare controller", (*Controller)(nil), false},
		{"hooks only", &minimalApp{}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConsole(tt.v); got != tt.want {
				t.Errorf("IsConsole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaitForKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLeft int
	}{
		{"consumes one byte", "xy", 1},
		{"end of input", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(tt.input)
			c := NewConsole(&minimalApp{}, WithStreams(in, nil, nil))

			if err := c.WaitForKey(); err != nil {
				t.Fatalf("WaitForKey() error = %v", err)
			}
			if in.Len() != tt.wantLeft {
				t.Errorf("unread = %d, want %d", in.Len(), tt.wantLeft)
			}
		})
	}
}

func TestWaitForKey_ReadError(t *testing.T) {
	c := NewConsole(&minimalApp{}, WithStreams(failingReader{}, nil, nil))
	if err := c.WaitForKey(); err == nil || errors.Is(err, ErrApplication) {
		t.Errorf("WaitForKey() error = %v, want plain read error", err)
	}
}

func TestType(t *testing.T) {
	tests := []struct {
		typ   Type
		name  string
		valid bool
	}{
		{DefaultConsole, "DefaultConsole", true},
		{DefaultWinform, "DefaultWinform", true},
		{DefaultWindowsService, "DefaultWindowsService", true},
		{LoggingWindowsService, "LoggingWindowsService", true},
		{LoggingConsole, "LoggingConsole", true},
		{LoggingWinform, "LoggingWinform", true},
		{TracedWindowsService, "TracedWindowsService", true},
		{TracedConsole, "TracedConsole", true},
		{TracedWinform, "TracedWinform", true},
		{Unknown, "Unknown", true},
		{Type(9), "Type(9)", false},
		{Type(-2), "Type(-2)", false},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.name {
			t.Errorf("String() = %s, want %s", got, tt.name)
		}
		if got := tt.typ.Valid(); got != tt.valid {
			t.Errorf("%s.Valid() = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestHook_String(t *testing.T) {
	if HookExitInstance.String() != "ExitInstance" || hookRun.String() != "Run" {
		t.Errorf("unexpected hook names %s %s", HookExitInstance, hookRun)
	}
}
