package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" json ", FormatJSON},
		{"compact", FormatCompact},
		{"pretty", FormatCompact},
		{"", FormatCompact},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetFormatFromEnv(t *testing.T) {
	t.Setenv("SECTIONPARSE_LOG_FORMAT", "")
	t.Setenv("LOG_FORMAT", "json")
	if got := GetFormatFromEnv(); got != FormatJSON {
		t.Errorf("GetFormatFromEnv() = %v, want %v", got, FormatJSON)
	}

	t.Setenv("SECTIONPARSE_LOG_FORMAT", "compact")
	if got := GetFormatFromEnv(); got != FormatCompact {
		t.Errorf("GetFormatFromEnv() = %v, want %v", got, FormatCompact)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	t.Setenv("SECTIONPARSE_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "error")
	if got := GetLogLevelFromEnv(); got != slog.LevelError {
		t.Errorf("GetLogLevelFromEnv() = %v, want %v", got, slog.LevelError)
	}

	t.Setenv("SECTIONPARSE_LOG_LEVEL", "debug")
	if got := GetLogLevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("GetLogLevelFromEnv() = %v, want %v", got, slog.LevelDebug)
	}
}
