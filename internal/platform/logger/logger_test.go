package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/syllabus-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"info level", "info", slog.LevelInfo},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"invalid falls back to info", "verbose", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			if err != nil {
				t.Fatalf("Setup() error = %v, want nil", err)
			}
			if log == nil {
				t.Fatal("Setup() returned nil logger")
			}

			ctx := context.Background()
			if !log.Enabled(ctx, tc.want) {
				t.Errorf("logger should be enabled at %v", tc.want)
			}
			if tc.want > slog.LevelDebug && log.Enabled(ctx, tc.want-4) {
				t.Errorf("logger should not be enabled below %v", tc.want)
			}
		})
	}
}
