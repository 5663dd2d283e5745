package domain

import (
	"fmt"
	"time"
)

// PingResult represents the result of a ping operation.
type PingResult struct {
	Message   string
	Latency   time.Duration
	Attempt   int
	Timestamp time.Time
}

// NewPingResult creates a PingResult for the given gateway latency.
// A zero latency means the latency is unknown.
func NewPingResult(latency time.Duration, attempt int) *PingResult {
	message := "Pong!"
	if latency > 0 {
		message = fmt.Sprintf("Pong! (%dms)", latency.Milliseconds())
	}
	if attempt > 1 {
		message = fmt.Sprintf("%s Ping #%d.", message, attempt)
	}

	return &PingResult{
		Message:   message,
		Latency:   latency,
		Attempt:   attempt,
		Timestamp: time.Now(),
	}
}
