package dbg

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewDevLogger(t *testing.T) {
	logger := NewDevLogger()
	if logger == nil {
		t.Fatal("NewDevLogger returned nil")
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("dev logger should log at debug level")
	}
}
