package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out sequential model calls. Each Wait blocks until a full
// interval has passed since the last Mark, or since the pacer was built.
type Pacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewPacer builds a pacer for one run. A non-positive interval never blocks.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{interval: interval}
	p.Mark()
	return p
}

// Mark records that a call just returned. The next Wait starts counting from here.
func (p *Pacer) Mark() {
	if p.interval <= 0 {
		p.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	// A fresh limiter starts with a full bucket; drain it so refill begins now.
	limiter := rate.NewLimiter(rate.Every(p.interval), 1)
	limiter.ReserveN(time.Now(), 1)
	p.limiter = limiter
}

// Wait blocks for the next slot or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
