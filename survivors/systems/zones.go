package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// zoneSnapshot caches this frame's zones so enemy and combat passes
// can do point tests without re-iterating entities.
type zoneSnapshot struct {
	kind   cfg.ZoneKind
	x, y   float64
	radius float64
}

var frameZones []zoneSnapshot

func collectZones(e *ecs.ECS) {
	frameZones = frameZones[:0]
	components.Zone.Each(e.World, func(entry *donburi.Entry) {
		z := components.Zone.Get(entry)
		pos := components.Position.Get(entry)
		frameZones = append(frameZones, zoneSnapshot{
			kind: z.Kind, x: pos.X, y: pos.Y, radius: z.Radius,
		})
	})
}

// zoneSlowAt reports the strongest ice slow covering a point.
func zoneSlowAt(x, y float64) (float64, bool) {
	best, found := 1.0, false
	for _, z := range frameZones {
		if z.kind != cfg.ZoneIce {
			continue
		}
		if gamemath.DistSq(x, y, z.x, z.y) > z.radius*z.radius {
			continue
		}
		m := cfg.ZoneTable[cfg.ZoneIce].SlowMult
		if m < best {
			best = m
		}
		found = true
	}
	return best, found
}

// zoneXPMultAt multiplies gem value for kills inside XP zones.
func zoneXPMultAt(x, y float64) float64 {
	mult := 1.0
	for _, z := range frameZones {
		if z.kind != cfg.ZoneXP {
			continue
		}
		if gamemath.DistSq(x, y, z.x, z.y) <= z.radius*z.radius {
			mult *= cfg.ZoneTable[cfg.ZoneXP].XPMult
		}
	}
	return mult
}

// UpdateZones expires zones and burns the player standing in lava.
func UpdateZones(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, _ := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.Zone.Each(e.World, func(entry *donburi.Entry) {
		z := components.Zone.Get(entry)
		pos := components.Position.Get(entry)

		z.Life -= dt
		if z.Life <= 0 {
			toRemove = append(toRemove, entry)
			return
		}

		if z.Kind != cfg.ZoneLava {
			return
		}
		z.TickTimer -= dt
		if z.TickTimer > 0 {
			return
		}
		z.TickTimer = cfg.ZoneTable[cfg.ZoneLava].Tick
		if gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y) < z.Radius {
			HurtPlayer(e, cfg.ZoneTable[cfg.ZoneLava].TickDmg, pos.X, pos.Y, nil)
		}
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}
