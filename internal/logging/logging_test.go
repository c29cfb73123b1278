package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFileCreatingDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jobsheet.log")

	logger, closer, err := New(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("field committed", "record", "1", "column", "est-value")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `msg="field committed"`) || !strings.Contains(out, "column=est-value") {
		t.Fatalf("log output = %q, want the info record", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log output = %q, debug record should be filtered", out)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("  ", slog.LevelDebug)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, slog.LevelDebug).Debug("tab changed", "id", "pending")
	if !strings.Contains(buf.String(), "id=pending") {
		t.Fatalf("output = %q, want id=pending", buf.String())
	}
}
