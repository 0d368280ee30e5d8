package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dualpresenter/internal/config"
)

func TestConsoleHandlerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = NewComponentLogger(logger, "namefilter")
	logger.Info("resolved card", Int(FieldCardID, 4), String("group", "Class A"), Error(errors.New("boom")))
	logger.Debug("hidden")

	line := buf.String()
	if !strings.Contains(line, " INFO namefilter: resolved card") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "card_id=4") || !strings.Contains(line, `group="Class A"`) || !strings.Contains(line, "error=boom") {
		t.Fatalf("missing fields: %q", line)
	}
	if strings.Contains(line, "hidden") {
		t.Fatal("debug line should be filtered at info level")
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithGroup("deck").Warn("overlap", Int("card", 2))
	if !strings.Contains(buf.String(), "deck.card=2") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("page moved", String(FieldScreen, "side"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "debug" || payload["screen"] != "side" || payload["ts"] == nil {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("hello file")
	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "dualpresenter.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file missing message: %q", data)
	}
}

func TestWithContextAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Options{Format: "console", Writer: &buf})
	ctx := WithCorrelationID(context.Background(), "abc-123")
	WithContext(ctx, logger).Info("run")
	if !strings.Contains(buf.String(), "correlation_id=abc-123") {
		t.Fatalf("missing correlation id: %q", buf.String())
	}
	if _, ok := CorrelationID(context.Background()); ok {
		t.Fatal("empty context has no correlation id")
	}
	NewNop().Error("ignored")
}
