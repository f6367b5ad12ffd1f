package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSourceHandler_LevelThreshold(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		minLevel   slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"warn at warn threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above warn threshold", slog.LevelError, slog.LevelWarn, true},
		{"debug below warn threshold", slog.LevelDebug, slog.LevelWarn, false},
		{"info at debug threshold", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.level, "probe")

			gotSource := strings.Contains(buf.String(), "source=")
			if gotSource != tt.wantSource {
				t.Errorf("source attribute present = %v, want %v; output: %s",
					gotSource, tt.wantSource, buf.String())
			}
		})
	}
}

func TestSourceHandler_PreservesAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	log := slog.New(NewSourceHandler(base, slog.LevelError)).
		With("component", "importer").
		WithGroup("run")

	log.Info("started", "page", 3)

	out := buf.String()
	if !strings.Contains(out, "component=importer") {
		t.Errorf("expected component attr in output: %s", out)
	}
	if !strings.Contains(out, "run.page=3") {
		t.Errorf("expected grouped attr in output: %s", out)
	}
}
