package plugin

import (
	"sync/atomic"
	"time"
)

var seedOverride atomic.Uint64

// SetSeed pins the run seed handed to every future plugin instance.
// Zero restores wall-clock seeding. Hosts set it to reproduce a run.
func SetSeed(seed uint64) {
	seedOverride.Store(seed)
}

// Seed returns the seed a fresh run should use: the host's override
// when set, else the wall clock.
func Seed() uint64 {
	if s := seedOverride.Load(); s != 0 {
		return s
	}
	return uint64(time.Now().UnixNano())
}
