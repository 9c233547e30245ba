package problem

import (
	"sync"
	"time"
)

// IDGenerator issues problem ids as millisecond Unix timestamps.
//
// Within one generator ids are strictly increasing: when the clock has not
// moved past the last issued id, the next id is last+1. Separate processes
// can still collide, and callers that merge lists from several sources must
// tolerate duplicate ids.
type IDGenerator struct {
	clock func() time.Time

	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates an IDGenerator reading time from clock.
func NewIDGenerator(clock func() time.Time) *IDGenerator {
	return &IDGenerator{clock: clock}
}

// NextID returns the next id.
func (g *IDGenerator) NextID() int64 {
	ms := g.clock().UnixMilli()

	g.mu.Lock()
	defer g.mu.Unlock()

	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}
