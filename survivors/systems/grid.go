package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/spatial"
)

// gridCellSize trades query breadth against bucket pressure. Enemies
// are 8-34 units, so 64 keeps neighbor scans to a handful of cells.
const gridCellSize = 64.0

var enemyGrid *spatial.Grid

// UpdateGrid rebuilds the enemy bucket grid at the top of the frame.
// Every query this frame observes the same start-of-frame snapshot.
func UpdateGrid(e *ecs.ECS) {
	if enemyGrid == nil {
		enemyGrid = spatial.NewGrid(cfg.World.Width, cfg.World.Height, gridCellSize)
	}
	enemyGrid.Reset()
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		enemyGrid.Insert(entry.Entity(), pos.X, pos.Y)
	})
}

// eachEnemyNear visits live enemy entries within radius of a point,
// resolving grid entities back to entries and skipping stale handles.
func eachEnemyNear(e *ecs.ECS, x, y, radius float64, fn func(entry *donburi.Entry, ex, ey float64)) {
	if enemyGrid == nil {
		return
	}
	enemyGrid.ForEachNeighbor(x, y, radius, func(ent donburi.Entity, ex, ey float64) {
		if !e.World.Valid(ent) {
			return
		}
		entry := e.World.Entry(ent)
		if !entry.HasComponent(components.Enemy) {
			return
		}
		fn(entry, ex, ey)
	})
}

// nearestEnemy resolves the closest live enemy to a point.
func nearestEnemy(e *ecs.ECS, x, y, maxR float64) (*donburi.Entry, float64, float64, bool) {
	if enemyGrid == nil {
		return nil, 0, 0, false
	}
	ent, ex, ey, ok := enemyGrid.Nearest(x, y, maxR, func(ent donburi.Entity) bool {
		return !e.World.Valid(ent)
	})
	if !ok {
		return nil, 0, 0, false
	}
	return e.World.Entry(ent), ex, ey, true
}

// ResetGrid drops the frame caches, for run restarts and tests.
func ResetGrid() {
	enemyGrid = nil
	frameZones = frameZones[:0]
}
