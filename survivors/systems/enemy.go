package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// enemyPass is reused every frame so the outer loop does not allocate.
var enemyPass []*donburi.Entry

// UpdateEnemies runs the per-enemy housekeeping and the type dispatch,
// then resolves overlap and contact damage. Deaths belong to the
// combat system; the only removals here are decoy expiry and strays
// that drifted too far from the player.
func UpdateEnemies(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, player := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	enemyPass = enemyPass[:0]
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemyPass = append(enemyPass, entry)
	})

	collectZones(e)

	var toRemove []*donburi.Entry
	for _, entry := range enemyPass {
		en := components.Enemy.Get(entry)
		pos := components.Position.Get(entry)

		if en.Decoy {
			en.Life -= dt
			if en.Life <= 0 {
				toRemove = append(toRemove, entry)
				continue
			}
		}

		en.HitFlash = math.Max(0, en.HitFlash-dt)
		en.ContactCD = math.Max(0, en.ContactCD-dt)
		if en.SlowTimer > 0 {
			en.SlowTimer -= dt
			if en.SlowTimer <= 0 {
				en.SlowMult = 1
			}
		}

		// ice zones keep reapplying their slow while stood in
		if m, ok := zoneSlowAt(pos.X, pos.Y); ok {
			en.ApplySlow(m, 0.3)
		}

		if en.Affix == cfg.AffixVampiric && en.Health < en.MaxHealth {
			en.RegenAcc += cfg.AffixVampiricRegen * dt
			if en.RegenAcc >= 1 {
				heal := int(en.RegenAcc)
				en.RegenAcc -= float64(heal)
				en.Health = min(en.Health+heal, en.MaxHealth)
			}
		}

		// knockback impulse decays fast and overrides steering
		switch {
		case en.KnockTime > 0:
			en.KnockTime -= dt
			pos.X += en.KnockX * dt
			pos.Y += en.KnockY * dt
			en.KnockX *= 1 - 6*dt
			en.KnockY *= 1 - 6*dt
		case en.Decoy:
			// copies only ever walk, whatever they mimic
			pursue(en, pos, ppos.X, ppos.Y, dt)
		default:
			enemyBehaviors[en.Type](e, entry, en, pos, ppos.X, ppos.Y, dt)
		}

		separate(entry, en, pos, dt)

		pos.X = gamemath.Clamp(pos.X, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
		pos.Y = gamemath.Clamp(pos.Y, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)

		// strays despawn instead of trailing forever; bosses never do
		if en.Type != cfg.EnemyBoss &&
			gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y) > cfg.DespawnDistance {
			toRemove = append(toRemove, entry)
			continue
		}

		// contact damage
		if en.ContactCD <= 0 &&
			gamemath.CircleHit(pos.X, pos.Y, en.Size, ppos.X, ppos.Y, cfg.Player.Size) {
			en.ContactCD = 0.8
			HurtPlayer(e, en.Damage, pos.X, pos.Y, entry)
			if player.Health <= 0 {
				break
			}
		}
	}

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

// pursue steps straight at the player.
func pursue(en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	dx, dy := gamemath.Normalize(px-pos.X, py-pos.Y)
	speed := en.CurrentSpeed()
	pos.X += dx * speed * dt
	pos.Y += dy * speed * dt
}

// separate nudges overlapping enemies apart using last frame's grid
// snapshot. Decoys skip it so mirror clusters read as one blob.
func separate(entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, dt float64) {
	if enemyGrid == nil || en.Decoy {
		return
	}
	self := entry.Entity()
	pushX, pushY := 0.0, 0.0
	enemyGrid.ForEachNeighbor(pos.X, pos.Y, en.Size*2, func(other donburi.Entity, ox, oy float64) {
		if other == self {
			return
		}
		dx, dy := pos.X-ox, pos.Y-oy
		d := math.Hypot(dx, dy)
		if d <= 0.001 || d >= en.Size*2 {
			return
		}
		strength := (en.Size*2 - d) / (en.Size * 2)
		pushX += dx / d * strength
		pushY += dy / d * strength
	})
	pos.X += pushX * 60 * dt
	pos.Y += pushY * 60 * dt
}
