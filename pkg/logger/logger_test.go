package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().With(String("run_id", "abc")).Info(context.Background(), "table loaded", Int("rows", 3))

	out := buf.String()
	for _, want := range []string{"table loaded", "run_id=abc", "rows=3", "source="} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Named("loader").Info(context.Background(), "test message")
	if !strings.Contains(buf.String(), "component=loader") {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestSetLevelString(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = SetLevelString("info") }()

	if err := SetLevelString("warn"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Get().Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("info record should be filtered at warn level, got %q", buf.String())
	}

	if err := SetLevelString("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInitWithNilWriter(t *testing.T) {
	if err := InitWithWriter(nil); err == nil {
		t.Error("expected error for nil writer")
	}
}
