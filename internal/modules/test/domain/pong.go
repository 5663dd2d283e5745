package domain

import (
	"fmt"
	"strings"
)

// PongTrigger is the emoji a message must contain to receive a pong.
const PongTrigger = "🏓"

// PongResult represents the result of evaluating a pong trigger.
type PongResult struct {
	ShouldRespond bool
	Response      string
}

// NewPongResult evaluates the content and creates a PongResult.
// count is the number of pongs sent so far, including this one.
func NewPongResult(content string, count int) *PongResult {
	if !strings.Contains(content, PongTrigger) {
		return &PongResult{}
	}

	response := "Pong " + PongTrigger
	if count > 1 {
		response = fmt.Sprintf("%s (x%d)", response, count)
	}

	return &PongResult{
		ShouldRespond: true,
		Response:      response,
	}
}
