package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("warn"); got != zapcore.WarnLevel {
		t.Errorf("Expected warn level, got %v", got)
	}
	if got := ParseLevel("loud"); got != zapcore.InfoLevel {
		t.Errorf("Expected unknown level to fall back to info, got %v", got)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", false, &buf)

	log.Infow("selection changed", "square", "E2")
	log.Warnw("storage unavailable", "err", "locked")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "selection changed") {
		t.Errorf("Info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "storage unavailable") {
		t.Errorf("Expected warn message in output: %s", out)
	}
}
