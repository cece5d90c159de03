package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/SohamSachinDhore/bet-v2/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should install the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLoggerWithWriter(&buf, config.LogConfig{Level: tt.level, Format: "text"})

			logger.Log(context.TODO(), tt.want, "at threshold")
			if buf.Len() == 0 {
				t.Errorf("expected output at level %v", tt.want)
			}

			buf.Reset()
			logger.Log(context.TODO(), tt.want-1, "below threshold")
			if buf.Len() != 0 {
				t.Errorf("level %v should be suppressed, got: %s", tt.want-1, buf.String())
			}
		})
	}
}

func TestNewLogger_Formats(t *testing.T) {
	var textBuf, jsonBuf bytes.Buffer

	newLoggerWithWriter(&textBuf, config.LogConfig{Level: "info", Format: "text"}).Info("hello")
	newLoggerWithWriter(&jsonBuf, config.LogConfig{Level: "info", Format: "json"}).Info("hello")

	if !strings.Contains(textBuf.String(), "source=") {
		t.Error("text format should include source info")
	}

	var m map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &m); err != nil {
		t.Fatalf("json format should produce valid JSON: %v", err)
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source info")
	}
}

// newLoggerWithWriter mirrors NewLogger but writes to buf so tests can read
// the output back.
func newLoggerWithWriter(buf *bytes.Buffer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(buf, opts))
	}
	return slog.New(slog.NewTextHandler(buf, opts))
}
