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

// fireDistance shoots the nearest enemy. Holds fire with no target so
// the trigger is not wasted. Rapid Fire adds shots and muzzle speed,
// Piercing Rounds drill through enemies and grow stronger each one,
// Scattergun fans the volley out until it becomes a full radial nova.
func fireDistance(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	maxRange := cfg.WeaponTable[cfg.WeaponDistance].Range
	_, tx, ty, ok := nearestEnemy(e, pos.X, pos.Y, maxRange)
	if !ok {
		return false
	}

	rapid := loadout.BranchTier(cfg.WeaponDistance, cfg.BranchDistRapid)
	pierce := loadout.BranchTier(cfg.WeaponDistance, cfg.BranchDistPierce)
	spread := loadout.BranchTier(cfg.WeaponDistance, cfg.BranchDistSpread)

	aim := math.Atan2(ty-pos.Y, tx-pos.X)
	shots := 1 + extraShots(e, cfg.WeaponDistance) + (rapid+1)/2 + spread
	speed := cfg.DistanceShotSpeed * (1 + 0.10*float64(rapid))
	life := maxRange / speed

	step := 0.12
	if spread >= cfg.BranchTierMax {
		step = 2 * math.Pi / float64(shots)
	} else if spread > 0 {
		step = 0.12 + 0.16*float64(spread)
	}

	for i := 0; i < shots; i++ {
		a := aim + (float64(i)-float64(shots-1)/2)*step
		dmg, crit := rollDamage(e, cfg.WeaponDistance, 1)
		factory.CreatePlayerBullet(e, pos.X, pos.Y, a, speed, dmg, crit, pierce, life)
	}
	return true
}

// UpdatePlayerBullets flies the shots and resolves their hits.
func UpdatePlayerBullets(e *ecs.ECS) {
	session := components.MustSession(e.World)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.PlayerBullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.PlayerBullet.Get(entry)
		pos := components.Position.Get(entry)

		b.Life -= dt
		pos.X += b.VX * dt
		pos.Y += b.VY * dt
		if b.Life <= 0 || outsideWorld(pos.X, pos.Y) {
			toRemove = append(toRemove, entry)
			return
		}

		dead := false
		eachEnemyNear(e, pos.X, pos.Y, 48, func(target *donburi.Entry, ex, ey float64) {
			if dead || target.Entity() == b.LastHit {
				return
			}
			en := components.Enemy.Get(target)
			if !gamemath.CircleHit(pos.X, pos.Y, 4, ex, ey, en.Size) {
				return
			}
			dirX, dirY := gamemath.Normalize(b.VX, b.VY)
			kx, ky := knockVelocity(dirX, dirY)
			// a piercing shot hits harder the deeper it goes
			amount := b.Damage + int(float64(b.Damage)*0.15*float64(b.Hits))
			components.QueueDamage(target, components.DamageEventData{
				Amount: amount, Crit: b.Crit, Weapon: cfg.WeaponDistance, KnockX: kx, KnockY: ky,
			})
			b.LastHit = target.Entity()
			b.Hits++
			if b.Pierce > 0 {
				b.Pierce--
				return
			}
			dead = true
		})
		if dead {
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

func outsideWorld(x, y float64) bool {
	return x < -40 || y < -40 || x > cfg.World.Width+40 || y > cfg.World.Height+40
}
