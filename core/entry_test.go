package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{Level(-1), "UNKNOWN"},
		{Level(5), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Name(t *testing.T) {
	for l := DebugLevel; l <= CriticalLevel; l++ {
		name, err := l.Name()
		if err != nil {
			t.Fatalf("Level(%d).Name() error = %v", int(l), err)
		}
		if name != levelNames[l] {
			t.Errorf("Level(%d).Name() = %q, want %q", int(l), name, levelNames[l])
		}
	}

	for _, l := range []Level{-100, -1, 5, 6, 1 << 20} {
		if _, err := l.Name(); !errors.Is(err, InvalidArgument) {
			t.Errorf("Level(%d).Name() error = %v, want InvalidArgument", int(l), err)
		}
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(3); got != "ERROR" {
		t.Errorf("LevelName(3) = %q, want ERROR", got)
	}
	if got := LevelName(42); got != "UNKNOWN" {
		t.Errorf("LevelName(42) = %q, want UNKNOWN", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warn", WarnLevel},
		{"warning", WarnLevel},
		{" error ", ErrorLevel},
		{"critical", CriticalLevel},
		{"fatal", CriticalLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseLevel("verbose"); !errors.Is(err, InvalidArgument) {
		t.Errorf("ParseLevel(verbose) error = %v, want InvalidArgument", err)
	}
}

func TestSelectors(t *testing.T) {
	if DriverText.String() != "text" || DriverJSON.String() != "json" {
		t.Errorf("unexpected driver names %q %q", DriverText, DriverJSON)
	}
	if DriverType(2).String() != "unknown" {
		t.Errorf("DriverType(2).String() = %q", DriverType(2).String())
	}
	if FormatJSON.String() != "json" || Format(2).String() != "unknown" {
		t.Errorf("unexpected format names %q %q", FormatJSON, Format(2))
	}
}
