package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "prod", "cli", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("%q: %v", mode, err)
		}
		l.With("component", "test").Debug("hello", "k", 1)
	}
}

func TestCLIModeSuppressesInfo(t *testing.T) {
	l, err := New("cli")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled")
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled in cli mode")
	}
}
