package wave

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerReportsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	out := buf.String()
	if !strings.Contains(out, "simd_level="+CurrentName()) {
		t.Errorf("log output %q does not mention level %q", out, CurrentName())
	}
	if !strings.Contains(out, "native_width=") {
		t.Errorf("log output %q does not report native_width", out)
	}
}
