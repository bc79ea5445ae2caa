package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With(KeyGroup, 7).Debug(context.Background(), "slot installed", KeySlot, 3)

	out := buf.String()
	for _, want := range []string{"slot installed", "group=7", "slot=3", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "ignored")
	if l.With("k", "v") == nil {
		t.Fatalf("With returned nil")
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault(nil) == nil {
		t.Fatalf("expected default logger")
	}
	l := Nop()
	if OrDefault(l) != l {
		t.Fatalf("expected passthrough")
	}
}

func TestNewZerologWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(zerolog.New(&buf).Level(zerolog.DebugLevel))

	l.With(KeyGroup, 7).Warn(context.Background(), "dispatch failed", KeySlot, 3, "dangling")

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"group":7`, `"slot":3`, `"message":"dispatch failed"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "dangling") {
		t.Fatalf("odd trailing key should be dropped: %q", out)
	}
}

func TestNewZerologRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(zerolog.New(&buf).Level(zerolog.InfoLevel))

	l.Debug(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}
}
