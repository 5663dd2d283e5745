package application

import (
	"strings"
	"sync/atomic"

	"github.com/sglre6355/slashkit/internal/modules/test/domain"
)

// PongInteractor handles the pong use case.
type PongInteractor struct {
	count atomic.Int64
}

// NewPongInteractor creates a new PongInteractor.
func NewPongInteractor() *PongInteractor {
	return &PongInteractor{}
}

// Execute evaluates the content and returns the pong result.
// Only triggering messages advance the pong count.
func (p *PongInteractor) Execute(content string) *domain.PongResult {
	if !strings.Contains(content, domain.PongTrigger) {
		return domain.NewPongResult(content, int(p.count.Load()))
	}
	return domain.NewPongResult(content, int(p.count.Add(1)))
}

// Count returns the number of pongs sent.
func (p *PongInteractor) Count() int {
	return int(p.count.Load())
}
