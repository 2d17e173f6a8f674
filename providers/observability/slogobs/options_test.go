package slogobs

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
)

func TestApplyOptions_Defaults(t *testing.T) {
	t.Setenv("SECTIONPARSE_LOG_FORMAT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SECTIONPARSE_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := applyOptions()
	if cfg.format != FormatCompact {
		t.Errorf("format = %v, want %v", cfg.format, FormatCompact)
	}
	if cfg.level != slog.LevelInfo {
		t.Errorf("level = %v, want %v", cfg.level, slog.LevelInfo)
	}
	if cfg.output != os.Stderr {
		t.Error("output should default to os.Stderr")
	}
	if cfg.logger != nil {
		t.Error("logger should default to nil")
	}
}

func TestApplyOptions_Overrides(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.Default()

	cfg := applyOptions(
		WithFormat(FormatJSON),
		WithLevel(slog.LevelError),
		WithOutput(&buf),
		WithLogger(logger),
	)

	if cfg.format != FormatJSON {
		t.Errorf("format = %v, want %v", cfg.format, FormatJSON)
	}
	if cfg.level != slog.LevelError {
		t.Errorf("level = %v, want %v", cfg.level, slog.LevelError)
	}
	if cfg.output != &buf {
		t.Error("output was not overridden")
	}
	if cfg.logger != logger {
		t.Error("logger was not overridden")
	}
}
