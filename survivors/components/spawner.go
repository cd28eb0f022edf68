package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// PendingSpawn is one telegraphed arrival: a warning marker sits at
// (X, Y) until Timer runs out, then the enemy appears there.
type PendingSpawn struct {
	Type  cfg.EnemyType
	X, Y  float64
	Timer float64
}

// SpawnerData holds the arrivals currently being telegraphed. A full
// list drops the telegraph and spawns immediately.
type SpawnerData struct {
	Pending [cfg.MaxPendingSpawns]PendingSpawn
	Count   int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// MustSpawner returns the singleton.
func MustSpawner(w donburi.World) *SpawnerData {
	entry, ok := Spawner.First(w)
	if !ok {
		panic("spawner singleton missing")
	}
	return Spawner.Get(entry)
}

// Queue registers a telegraphed arrival. Returns false when the list
// is full and the caller should spawn directly.
func (s *SpawnerData) Queue(t cfg.EnemyType, x, y float64) bool {
	if s.Count >= len(s.Pending) {
		return false
	}
	s.Pending[s.Count] = PendingSpawn{Type: t, X: x, Y: y, Timer: cfg.SpawnWarning}
	s.Count++
	return true
}

// HasPending reports whether an arrival of the given type is already
// telegraphed; the boss gate checks this so two never queue at once.
func (s *SpawnerData) HasPending(t cfg.EnemyType) bool {
	for i := 0; i < s.Count; i++ {
		if s.Pending[i].Type == t {
			return true
		}
	}
	return false
}
