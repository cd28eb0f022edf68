package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// fireMagic launches a nova ring from the player. Rings live in the
// loadout pool; with all slots busy the trigger waits. Grand Nova buys
// radius, Pulse shrinks the ring but speeds everything up, Frost Ring
// chills whatever the edge touches.
func fireMagic(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	ring := (*components.RingState)(nil)
	for i := range loadout.Rings {
		if !loadout.Rings[i].Active {
			ring = &loadout.Rings[i]
			break
		}
	}
	if ring == nil {
		return false
	}

	maxR := cfg.WeaponTable[cfg.WeaponMagic].Range * weaponArea(e, cfg.WeaponMagic)
	speed := cfg.MagicRingSpeed
	if t := float64(loadout.BranchTier(cfg.WeaponMagic, cfg.BranchMagicNova)); t > 0 {
		maxR *= 1 + 0.20*t
	}
	if t := float64(loadout.BranchTier(cfg.WeaponMagic, cfg.BranchMagicPulse)); t > 0 {
		maxR *= 0.7
		speed *= 1 + 0.25*t
	}

	dmg, crit := rollDamage(e, cfg.WeaponMagic, 1)
	*ring = components.RingState{
		Active: true,
		X:      pos.X,
		Y:      pos.Y,
		MaxR:   maxR,
		Speed:  speed,
		Damage: dmg,
		Crit:   crit,
	}
	if t := float64(loadout.BranchTier(cfg.WeaponMagic, cfg.BranchMagicFreeze)); t > 0 {
		ring.SlowMult = 0.75 - 0.07*t
		ring.SlowTime = 1.2 + 0.2*t
	}
	return true
}

// UpdateRings expands live rings. An enemy takes the hit exactly when
// the edge crosses it, which needs no per-ring hit list.
func UpdateRings(e *ecs.ECS) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	dt := session.Dt

	for i := range loadout.Rings {
		ring := &loadout.Rings[i]
		if !ring.Active {
			continue
		}
		ring.PrevR = ring.R
		ring.R += ring.Speed * dt
		if ring.PrevR >= ring.MaxR {
			ring.Active = false
			continue
		}

		eachEnemyNear(e, ring.X, ring.Y, ring.R+cfg.MagicRingShell+40, func(target *donburi.Entry, ex, ey float64) {
			dist := gamemath.Dist(ring.X, ring.Y, ex, ey)
			// center crossing fires exactly once per ring
			if dist > ring.R || dist <= ring.PrevR {
				return
			}
			dirX, dirY := gamemath.Normalize(ex-ring.X, ey-ring.Y)
			kx, ky := knockVelocity(dirX, dirY)
			components.QueueDamage(target, components.DamageEventData{
				Amount: ring.Damage, Crit: ring.Crit, Weapon: cfg.WeaponMagic, KnockX: kx, KnockY: ky,
			})
			if ring.SlowTime > 0 {
				components.Enemy.Get(target).ApplySlow(ring.SlowMult, ring.SlowTime)
			}
		})
	}
}
