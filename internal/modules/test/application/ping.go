package application

import (
	"sync/atomic"
	"time"

	"github.com/sglre6355/slashkit/internal/modules/test/domain"
)

// PingInteractor handles the ping use case.
type PingInteractor struct {
	attempts atomic.Int64
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{}
}

// Execute performs the ping operation for the given gateway latency and
// returns the result.
func (p *PingInteractor) Execute(latency time.Duration) *domain.PingResult {
	attempt := p.attempts.Add(1)
	return domain.NewPingResult(latency, int(attempt))
}
