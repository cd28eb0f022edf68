package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// fireMelee swings an arc in the facing direction. The swing happens
// whether or not anything is in reach. Long Arm widens the arc toward
// a full circle, Heavy Edge buys raw damage and brutal knockback,
// Whirlwind always covers the full circle at a fast cadence.
func fireMelee(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, player := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	reach := cfg.WeaponTable[cfg.WeaponMelee].Range * weaponArea(e, cfg.WeaponMelee)
	arc := cfg.MeleeArc
	dmgMult := 1.0
	knockScale := 1.0

	if t := float64(loadout.BranchTier(cfg.WeaponMelee, cfg.BranchMeleeWide)); t > 0 {
		arc = math.Min(arc*(1+0.6*t), 2*math.Pi)
		reach *= 1 + 0.06*t
	}
	if t := float64(loadout.BranchTier(cfg.WeaponMelee, cfg.BranchMeleePower)); t > 0 {
		dmgMult = 1.5 + 0.5*(t-1)
		knockScale = 1 + 0.5*t
	}
	if loadout.BranchTier(cfg.WeaponMelee, cfg.BranchMeleeSpin) > 0 {
		arc = 2 * math.Pi
	}

	hitAny := false
	eachEnemyNear(e, pos.X, pos.Y, reach+40, func(target *donburi.Entry, ex, ey float64) {
		en := components.Enemy.Get(target)
		if !gamemath.CircleHit(pos.X, pos.Y, reach, ex, ey, en.Size) {
			return
		}
		toEnemy := math.Atan2(ey-pos.Y, ex-pos.X)
		if math.Abs(gamemath.AngleDiff(player.Facing, toEnemy)) > arc/2 {
			return
		}
		dmg, crit := rollDamage(e, cfg.WeaponMelee, dmgMult)
		kx, ky := knockVelocity(math.Cos(toEnemy), math.Sin(toEnemy))
		components.QueueDamage(target, components.DamageEventData{
			Amount: dmg, Crit: crit, Weapon: cfg.WeaponMelee,
			KnockX: kx * knockScale, KnockY: ky * knockScale,
		})
		hitAny = true
	})

	drawSwingParticles(e, pos.X, pos.Y, player.Facing, reach, arc, hitAny)
	return true
}

// drawSwingParticles traces the arc so the swing reads even on a miss.
func drawSwingParticles(e *ecs.ECS, x, y, facing, reach, arc float64, hit bool) {
	particles := components.MustParticles(e.World)
	n := 6
	if hit {
		n = 10
	}
	clr := cfg.WeaponTable[cfg.WeaponMelee].Color
	for i := 0; i < n; i++ {
		a := facing + (float64(i)/float64(n-1)-0.5)*arc
		particles.Spawn(components.Particle{
			X:    x + math.Cos(a)*reach*0.7,
			Y:    y + math.Sin(a)*reach*0.7,
			VX:   math.Cos(a) * 60,
			VY:   math.Sin(a) * 60,
			Life: 0.2, Size: 2.5, Drag: 4, Color: clr,
		})
	}
}
