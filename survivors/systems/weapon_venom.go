package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

// fireVenom lobs a cloud onto the nearest target, falling back to the
// facing direction when nothing is in range. Tick damage is fixed at
// cast time like every other projectile.
func fireVenom(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, player := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	reach := cfg.WeaponTable[cfg.WeaponVenom].Range
	cx, cy := pos.X+math.Cos(player.Facing)*reach*0.7, pos.Y+math.Sin(player.Facing)*reach*0.7
	if _, tx, ty, ok := nearestEnemy(e, pos.X, pos.Y, reach); ok {
		cx, cy = tx, ty
	}

	miasma := float64(loadout.BranchTier(cfg.WeaponVenom, cfg.BranchVenomMiasma))
	radius := cfg.VenomRadius * weaponArea(e, cfg.WeaponVenom) * (1 + 0.20*miasma)
	life := cfg.VenomLife * (1 + 0.20*miasma)

	branchMult := 1.0
	if t := loadout.BranchTier(cfg.WeaponVenom, cfg.BranchVenomVirulent); t > 0 {
		branchMult = 1.3 + 0.3*float64(t-1)
	}
	tick, crit := rollDamage(e, cfg.WeaponVenom, branchMult)

	slow, slowTime := cfg.VenomSlowMult, cfg.VenomSlowTime
	if t := float64(loadout.BranchTier(cfg.WeaponVenom, cfg.BranchVenomNumbing)); t > 0 {
		slow = math.Max(0.2, slow-0.07*t)
		slowTime += 0.3 * t
	}

	cloud := factory.CreateCloud(e, cx, cy, radius, tick, slow, slowTime, life)
	if cloud == nil {
		return false
	}
	components.Cloud.Get(cloud).Crit = crit
	return true
}

// UpdateClouds ticks damage and slow onto enemies inside each cloud.
func UpdateClouds(e *ecs.ECS) {
	session := components.MustSession(e.World)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cloud.Get(entry)
		pos := components.Position.Get(entry)

		c.Life -= dt
		if c.Life <= 0 {
			toRemove = append(toRemove, entry)
			return
		}

		c.TickTimer -= dt
		if c.TickTimer > 0 {
			return
		}
		c.TickTimer = cfg.VenomTick

		eachEnemyNear(e, pos.X, pos.Y, c.Radius+40, func(target *donburi.Entry, ex, ey float64) {
			en := components.Enemy.Get(target)
			if !gamemath.CircleHit(pos.X, pos.Y, c.Radius, ex, ey, en.Size) {
				return
			}
			// the slow refreshes rather than stacking
			en.ApplySlow(c.SlowMult, c.SlowTime)
			// gas seeps everywhere: no direction, no knockback
			components.QueueDamage(target, components.DamageEventData{
				Amount: c.Damage, Crit: c.Crit, Weapon: cfg.WeaponVenom,
			})
		})
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}
