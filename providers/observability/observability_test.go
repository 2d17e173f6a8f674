package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAttribute_Constructors(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantKey   string
		wantValue interface{}
	}{
		{"string", String("key", "value"), "key", "value"},
		{"int", Int("count", 42), "count", 42},
		{"bool", Bool("flag", true), "flag", true},
		{"duration", Duration("latency", 5*time.Second), "latency", 5 * time.Second},
		{"error", Error(errors.New("boom")), "error", "boom"},
		{"nil error", Error(nil), "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantValue)
			}
		})
	}
}

func TestAttribute_Strings(t *testing.T) {
	attr := Strings("keys", []string{"a", "b"})
	got, ok := attr.Value.([]string)
	if !ok || len(got) != 2 || got[0] != "a" {
		t.Errorf("Strings() value = %#v", attr.Value)
	}
}

type countingLogger struct{ calls int }

func (c *countingLogger) Debug(context.Context, string, ...Attribute) { c.calls++ }
func (c *countingLogger) Warn(context.Context, string, ...Attribute)  { c.calls++ }
func (c *countingLogger) Error(context.Context, string, ...Attribute) { c.calls++ }

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(Nop); !ok {
		t.Error("OrNop(nil) should return Nop")
	}

	l := &countingLogger{}
	OrNop(l).Warn(context.Background(), "msg")
	if l.calls != 1 {
		t.Errorf("OrNop(l) should return l, calls = %d", l.calls)
	}
}

func TestContextWithLogger_RoundTrip(t *testing.T) {
	l := &countingLogger{}
	ctx := ContextWithLogger(context.Background(), l)

	got := LoggerFromContext(ctx)
	if got != Logger(l) {
		t.Errorf("LoggerFromContext() = %v, want the stored logger", got)
	}
}

func TestLoggerFromContext_Missing(t *testing.T) {
	if got := LoggerFromContext(context.Background()); got != nil {
		t.Errorf("LoggerFromContext(empty) = %v, want nil", got)
	}
	//nolint:staticcheck // nil context is part of the contract
	if got := LoggerFromContext(nil); got != nil {
		t.Errorf("LoggerFromContext(nil) = %v, want nil", got)
	}
}

func TestContextWithLogger_NilParent(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	ctx := ContextWithLogger(nil, Nop{})
	if ctx == nil {
		t.Fatal("ContextWithLogger(nil) returned nil context")
	}
	if _, ok := LoggerFromContext(ctx).(Nop); !ok {
		t.Error("logger not stored on fresh context")
	}
}
