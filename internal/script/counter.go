package script

import (
	"maps"
	"sync"
)

// opCounter tallies executed commands by Op. It is safe for concurrent use,
// so Counts may be read while Run is in progress on another goroutine.
type opCounter struct {
	counts map[Op]uint64
	lock   sync.Mutex
}

func newOpCounter() *opCounter {
	return &opCounter{
		counts: make(map[Op]uint64),
	}
}

func (c *opCounter) Increment(op Op) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.counts[op]++
}

// Snapshot returns a copy of the current counts.
func (c *opCounter) Snapshot() map[Op]uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return maps.Clone(c.counts)
}
