package client

import "sync/atomic"

// nodePool hands out cluster base addresses round robin. The rotation
// cursor is the only mutable state shared between concurrent calls; it
// advances with an atomic fetch-and-add so no two calls observe the same
// pre-increment value.
type nodePool struct {
	addresses []string
	cursor    atomic.Uint64
	// calls counts next() invocations; tests assert the pool stays
	// untouched when an explicit override is in play.
	calls atomic.Uint64
}

func newNodePool(addresses []string) *nodePool {
	pool := &nodePool{addresses: addresses}
	// Start at -1 so the first call hands out index 0.
	pool.cursor.Store(^uint64(0))
	return pool
}

// next returns the address at the current cursor and advances it. Every
// address is visited once per len(addresses) calls; there is no
// health- or latency-aware weighting.
func (p *nodePool) next() (string, error) {
	p.calls.Add(1)
	if len(p.addresses) == 0 {
		return "", NewConfigurationError("no addresses configured")
	}
	idx := p.cursor.Add(1) % uint64(len(p.addresses))
	return p.addresses[idx], nil
}
