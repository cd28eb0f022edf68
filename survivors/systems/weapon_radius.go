package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// orbParams resolves the branch into the ring's shape. Guardian pulls
// fewer orbs in tight, Swarm floods the ring with small fast ones,
// Juggernaut swings a couple of heavy wrecking balls.
func orbParams(e *ecs.ECS) (n int, size, radius, spin, dmgMult float64) {
	loadout := components.MustLoadout(e.World)

	n = cfg.RadiusOrbCount + extraShots(e, cfg.WeaponRadius)
	size = cfg.RadiusOrbSize
	radius = cfg.WeaponTable[cfg.WeaponRadius].Range * weaponArea(e, cfg.WeaponRadius)
	spin = cfg.RadiusOrbSpeed
	dmgMult = 1

	if t := float64(loadout.BranchTier(cfg.WeaponRadius, cfg.BranchRadiusGuardian)); t > 0 {
		n--
		radius *= 1 - 0.06*t
		size *= 1 + 0.05*t
	}
	if t := float64(loadout.BranchTier(cfg.WeaponRadius, cfg.BranchRadiusSwarm)); t > 0 {
		n += 2 + int(t)
		size *= 0.7
		spin *= 1 + 0.15*t
	}
	if t := float64(loadout.BranchTier(cfg.WeaponRadius, cfg.BranchRadiusHeavy)); t > 0 {
		n--
		size *= 1.5 + 0.15*t
		spin *= 0.6
		dmgMult = 1.6 + 0.4*(t-1)
	}

	if n < 2 {
		n = 2
	}
	if n > cfg.RadiusMaxOrbs {
		n = cfg.RadiusMaxOrbs
	}
	return
}

// orbPosition places orb i on the current ring.
func orbPosition(loadout *components.LoadoutData, radius, px, py float64, i, n int) (float64, float64) {
	a := loadout.OrbitAngle + float64(i)*(2*math.Pi/float64(n))
	return px + math.Cos(a)*radius, py + math.Sin(a)*radius
}

// updateOrbit runs every frame: spins the ring and damages enemies the
// orbs touch. Guardian orbs also swat enemy bullets out of the air.
func updateOrbit(e *ecs.ECS, slot *components.WeaponState, dt float64) {
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	n, size, radius, spin, dmgMult := orbParams(e)
	loadout.OrbitAngle += spin * dt

	for i := 0; i < n; i++ {
		loadout.OrbitHit[i] = math.Max(0, loadout.OrbitHit[i]-dt)
		ox, oy := orbPosition(loadout, radius, pos.X, pos.Y, i, n)
		if loadout.OrbitHit[i] > 0 {
			continue
		}
		hit := false
		eachEnemyNear(e, ox, oy, size+40, func(target *donburi.Entry, ex, ey float64) {
			if hit {
				return
			}
			en := components.Enemy.Get(target)
			if !gamemath.CircleHit(ox, oy, size, ex, ey, en.Size) {
				return
			}
			dmg, crit := rollDamage(e, cfg.WeaponRadius, dmgMult)
			dirX, dirY := gamemath.Normalize(ex-pos.X, ey-pos.Y)
			kx, ky := knockVelocity(dirX, dirY)
			components.QueueDamage(target, components.DamageEventData{
				Amount: dmg, Crit: crit, Weapon: cfg.WeaponRadius, KnockX: kx, KnockY: ky,
			})
			hit = true
		})
		if hit {
			loadout.OrbitHit[i] = cfg.RadiusOrbHitCD
		}
	}

	if cfg.RadiusOrbDecoys && loadout.BranchTier(cfg.WeaponRadius, cfg.BranchRadiusGuardian) > 0 {
		clearBulletsOnOrbs(e, loadout, size, radius, pos.X, pos.Y, n)
	}
}

// clearBulletsOnOrbs removes enemy bullets that graze an orb.
func clearBulletsOnOrbs(e *ecs.ECS, loadout *components.LoadoutData, size, radius, px, py float64, n int) {
	var toRemove []*donburi.Entry
	components.EnemyBullet.Each(e.World, func(bentry *donburi.Entry) {
		bpos := components.Position.Get(bentry)
		for i := 0; i < n; i++ {
			ox, oy := orbPosition(loadout, radius, px, py, i, n)
			if gamemath.CircleHit(ox, oy, size, bpos.X, bpos.Y, 4) {
				toRemove = append(toRemove, bentry)
				return
			}
		}
	})
	if len(toRemove) == 0 {
		return
	}
	particles := components.MustParticles(e.World)
	for _, bentry := range toRemove {
		bpos := components.Position.Get(bentry)
		particles.Spawn(components.Particle{
			X: bpos.X, Y: bpos.Y, Life: 0.15, Size: 2,
			Color: cfg.WeaponTable[cfg.WeaponRadius].Color,
		})
		e.World.Remove(bentry.Entity())
	}
}
