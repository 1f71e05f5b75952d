package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger()
	if err != nil {
		t.Fatalf("NewZapLogger failed: %v", err)
	}
	if l == nil {
		t.Fatal("NewZapLogger returned nil logger")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	// Must not panic with or without fields.
	l.Info("ignored")
	l.Warn("ignored", zap.String("k", "v"))
	l.Error("ignored", zap.Int("n", 1), zap.Bool("b", true))
}

func TestFieldsToKeyvals(t *testing.T) {
	kv := fieldsToKeyvals([]Field{zap.String("bot", "ao"), zap.Int("tps", 4)})
	if len(kv) != 4 {
		t.Fatalf("expected 4 keyvals, got %d", len(kv))
	}
	if kv[0] != "bot" || kv[2] != "tps" {
		t.Fatalf("keys out of order: %v", kv)
	}
}
