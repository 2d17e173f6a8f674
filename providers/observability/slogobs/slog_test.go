package slogobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/leofalp/sectionparse/providers/observability"
)

func TestObserver_Logging(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug), WithFormat(FormatCompact))
	ctx := context.Background()

	observer.Debug(ctx, "debug line", observability.String("section.id", "hero"))
	observer.Warn(ctx, "warn line", observability.Int("count", 2))
	observer.Error(ctx, "error line")

	output := buf.String()
	for _, want := range []string{"DEBUG debug line", `"section.id":"hero"`, "WARN warn line", `"count":2`, "ERROR error line"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestObserver_WithLoggerTakesPrecedence(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	observer := New(WithLogger(logger), WithFormat(FormatJSON))

	observer.Warn(context.Background(), "via text handler")

	if !strings.Contains(buf.String(), "msg=\"via text handler\"") {
		t.Errorf("Expected text handler output, got: %s", buf.String())
	}
}

func TestObserver_Counter(t *testing.T) {
	observer := New(WithOutput(&bytes.Buffer{}))
	ctx := context.Background()

	if got := observer.CounterValue("runs"); got != 0 {
		t.Errorf("CounterValue() before use = %d, want 0", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observer.Counter("runs").Add(ctx, 2)
		}()
	}
	wg.Wait()

	if got := observer.CounterValue("runs"); got != 20 {
		t.Errorf("CounterValue() = %d, want 20", got)
	}
	if observer.Counter("runs") != observer.Counter("runs") {
		t.Error("Counter() should return the same instance for the same name")
	}
}

func TestObserver_HistogramLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	observer.Histogram("duration_ms").Record(context.Background(), 12.5)

	output := buf.String()
	if !strings.Contains(output, `"metric":"duration_ms"`) || !strings.Contains(output, `"value":12.5`) {
		t.Errorf("Expected histogram record in output, got: %s", output)
	}
}
