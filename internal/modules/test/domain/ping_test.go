package domain

import (
	"testing"
	"time"
)

func TestNewPingResult(t *testing.T) {
	result := NewPingResult(0, 1)

	if result.Message != "Pong!" {
		t.Errorf("expected message %q, got %q", "Pong!", result.Message)
	}

	if result.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestNewPingResult_Message(t *testing.T) {
	tests := []struct {
		name     string
		latency  time.Duration
		attempt  int
		expected string
	}{
		{"unknown latency", 0, 1, "Pong!"},
		{"known latency", 42 * time.Millisecond, 1, "Pong! (42ms)"},
		{"repeated ping", 0, 3, "Pong! Ping #3."},
		{"repeated ping with latency", 7 * time.Millisecond, 2, "Pong! (7ms) Ping #2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPingResult(tt.latency, tt.attempt)
			if result.Message != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, result.Message)
			}
		})
	}
}

func TestPingResult_TimestampIsRecent(t *testing.T) {
	before := time.Now()
	result := NewPingResult(0, 1)
	after := time.Now()

	if result.Timestamp.Before(before) || result.Timestamp.After(after) {
		t.Error("expected timestamp to be between before and after")
	}
}
