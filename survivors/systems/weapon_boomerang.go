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

// fireBoomerang hurls glaives along the facing direction. Razor Edge
// buys damage and a bigger blade, Twin Glaive throws a mirror glaive
// the opposite way, Far Throw stretches the flight.
func fireBoomerang(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, player := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	razorT := float64(loadout.BranchTier(cfg.WeaponBoomerang, cfg.BranchBoomHeavy))
	twinT := loadout.BranchTier(cfg.WeaponBoomerang, cfg.BranchBoomTwin)
	farT := float64(loadout.BranchTier(cfg.WeaponBoomerang, cfg.BranchBoomFar))

	maxDist := cfg.WeaponTable[cfg.WeaponBoomerang].Range * (1 + 0.20*farT)
	speed := cfg.BoomerangSpeed * (1 + 0.12*farT)
	dmgMult := 1.0
	if razorT > 0 {
		dmgMult = 1.3 + 0.3*(razorT-1)
	}

	throw := func(angle float64) bool {
		dmg, crit := rollDamage(e, cfg.WeaponBoomerang, dmgMult)
		g := factory.CreateBoomerang(e, pos.X, pos.Y, angle, speed, dmg, crit, maxDist)
		if g == nil {
			return false
		}
		if razorT > 0 {
			components.Boomerang.Get(g).Size = cfg.BoomerangSize * (1 + 0.12*razorT)
		}
		return true
	}

	count := 1 + extraShots(e, cfg.WeaponBoomerang)
	fired := false
	for i := 0; i < count; i++ {
		spread := (float64(i) - float64(count-1)/2) * 0.35
		if throw(player.Facing + spread) {
			fired = true
		}
	}
	if twinT > 0 && throw(player.Facing+math.Pi) {
		fired = true
	}
	return fired
}

// UpdateBoomerangs flies glaives out and back. The hit list clears at
// the turnaround so the return pass cuts again.
func UpdateBoomerangs(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, _ := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.Boomerang.Each(e.World, func(entry *donburi.Entry) {
		b := components.Boomerang.Get(entry)
		pos := components.Position.Get(entry)

		b.Spin += 12 * dt
		if !b.Returning {
			step := math.Hypot(b.VX, b.VY) * dt
			b.Traveled += step
			pos.X += b.VX * dt
			pos.Y += b.VY * dt
			if b.Traveled >= b.MaxDist || outsideWorld(pos.X, pos.Y) {
				b.Returning = true
				b.ClearHits()
			}
		} else {
			// home onto the player with growing pull
			dx, dy := gamemath.Normalize(ppos.X-pos.X, ppos.Y-pos.Y)
			b.VX += dx * cfg.BoomerangReturn * dt
			b.VY += dy * cfg.BoomerangReturn * dt
			b.VX, b.VY = gamemath.ClampSpeed(b.VX, b.VY, cfg.BoomerangSpeed*1.4)
			pos.X += b.VX * dt
			pos.Y += b.VY * dt
			if gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y) < cfg.Player.Size+6 {
				toRemove = append(toRemove, entry)
				return
			}
		}

		eachEnemyNear(e, pos.X, pos.Y, 40, func(target *donburi.Entry, ex, ey float64) {
			if b.HasHit(target.Entity()) {
				return
			}
			en := components.Enemy.Get(target)
			if !gamemath.CircleHit(pos.X, pos.Y, b.Size, ex, ey, en.Size) {
				return
			}
			b.MarkHit(target.Entity())
			dirX, dirY := gamemath.Normalize(b.VX, b.VY)
			kx, ky := knockVelocity(dirX, dirY)
			components.QueueDamage(target, components.DamageEventData{
				Amount: b.Damage, Crit: b.Crit, Weapon: cfg.WeaponBoomerang, KnockX: kx, KnockY: ky,
			})
		})
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}
