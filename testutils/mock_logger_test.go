package testutils

import (
	"testing"

	"go.uber.org/zap"
)

func TestMockLoggerRecords(t *testing.T) {
	l := NewMockLogger()
	l.Info("first", zap.String("k", "v"))
	l.Warn("second")
	l.Error("third")

	if l.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", l.Len())
	}
	if l.LastMessage() != "third" || l.LastLevel() != "error" {
		t.Fatalf("last entry = %s/%s", l.LastLevel(), l.LastMessage())
	}
	if msgs := l.Messages("warn"); len(msgs) != 1 || msgs[0] != "second" {
		t.Fatalf("warn messages = %v", msgs)
	}
}

func TestMockLoggerEmpty(t *testing.T) {
	l := NewMockLogger()
	if l.LastMessage() != "" || l.LastLevel() != "" {
		t.Fatal("empty logger must report empty last entry")
	}
}
