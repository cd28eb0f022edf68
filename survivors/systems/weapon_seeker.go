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

// fireSeeker launches missiles at the nearest enemy. Extra missiles
// fan out and reacquire on their own. Warhead widens the blast and its
// splash share, Salvo adds missiles, Afterburner buys speed and turn.
func fireSeeker(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	maxRange := cfg.WeaponTable[cfg.WeaponSeeker].Range
	target, tx, ty, ok := nearestEnemy(e, pos.X, pos.Y, maxRange)
	if !ok {
		return false
	}

	warT := float64(loadout.BranchTier(cfg.WeaponSeeker, cfg.BranchSeekerPayload))
	burnT := float64(loadout.BranchTier(cfg.WeaponSeeker, cfg.BranchSeekerHunter))

	speed := cfg.SeekerSpeed * (1 + 0.15*burnT)
	turn := cfg.SeekerTurnRate * (1 + 0.20*burnT)
	blast := cfg.SeekerBlastR * weaponArea(e, cfg.WeaponSeeker) * (1 + 0.25*warT)
	splash := cfg.SeekerBlastFrac
	if warT > 0 {
		splash = math.Min(0.9, splash+0.08*warT)
	}

	count := 1 + extraShots(e, cfg.WeaponSeeker) + loadout.BranchTier(cfg.WeaponSeeker, cfg.BranchSeekerTwin)
	aim := math.Atan2(ty-pos.Y, tx-pos.X)
	for i := 0; i < count; i++ {
		spread := (float64(i) - float64(count-1)/2) * 0.5
		dmg, crit := rollDamage(e, cfg.WeaponSeeker, 1)
		m := factory.CreateSeeker(e, pos.X, pos.Y, aim+spread, dmg, crit, speed, turn, blast, target.Entity(), true)
		if m != nil && warT > 0 {
			components.Seeker.Get(m).SplashFrac = splash
		}
	}
	return true
}

// UpdateSeekers steers live missiles, retargets dead marks and
// detonates on contact or timeout.
func UpdateSeekers(e *ecs.ECS) {
	session := components.MustSession(e.World)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.Seeker.Each(e.World, func(entry *donburi.Entry) {
		s := components.Seeker.Get(entry)
		pos := components.Position.Get(entry)

		s.Life -= dt
		if s.Life <= 0 {
			detonateSeeker(e, s, pos.X, pos.Y, nil)
			toRemove = append(toRemove, entry)
			return
		}

		// revalidate the mark, then steer at it
		if s.HasTgt && !e.World.Valid(s.Target) {
			s.HasTgt = false
		}
		if !s.HasTgt {
			if t, _, _, ok := nearestEnemy(e, pos.X, pos.Y, cfg.WeaponTable[cfg.WeaponSeeker].Range); ok {
				s.Target = t.Entity()
				s.HasTgt = true
			}
		}
		if s.HasTgt {
			tpos := components.Position.Get(e.World.Entry(s.Target))
			want := math.Atan2(tpos.Y-pos.Y, tpos.X-pos.X)
			diff := gamemath.AngleDiff(s.Angle, want)
			maxTurn := s.TurnRate * dt
			s.Angle = gamemath.NormalizeAngle(s.Angle + gamemath.Clamp(diff, -maxTurn, maxTurn))
		}

		pos.X += math.Cos(s.Angle) * s.Speed * dt
		pos.Y += math.Sin(s.Angle) * s.Speed * dt

		if session.Tick%2 == 0 {
			exhaust(e, pos.X, pos.Y, s.Angle)
		}

		hit := (*donburi.Entry)(nil)
		eachEnemyNear(e, pos.X, pos.Y, 40, func(target *donburi.Entry, ex, ey float64) {
			if hit != nil {
				return
			}
			en := components.Enemy.Get(target)
			if gamemath.CircleHit(pos.X, pos.Y, 5, ex, ey, en.Size) {
				hit = target
			}
		})
		if hit != nil {
			detonateSeeker(e, s, pos.X, pos.Y, hit)
			toRemove = append(toRemove, entry)
		}
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

// detonateSeeker deals full damage to the direct hit and a fraction to
// everything else inside the blast.
func detonateSeeker(e *ecs.ECS, s *components.SeekerData, x, y float64, direct *donburi.Entry) {
	burst(e, x, y, 12, cfg.WeaponTable[cfg.WeaponSeeker].Color, 170)
	session := components.MustSession(e.World)
	session.AddShake(0.1, 2)

	splash := int(float64(s.Damage) * s.SplashFrac)
	eachEnemyNear(e, x, y, s.BlastR+40, func(target *donburi.Entry, ex, ey float64) {
		en := components.Enemy.Get(target)
		if !gamemath.CircleHit(x, y, s.BlastR, ex, ey, en.Size) {
			return
		}
		amount := splash
		if direct != nil && target.Entity() == direct.Entity() {
			amount = s.Damage
		}
		if amount <= 0 {
			return
		}
		dirX, dirY := gamemath.Normalize(ex-x, ey-y)
		kx, ky := knockVelocity(dirX, dirY)
		components.QueueDamage(target, components.DamageEventData{
			Amount: amount, Crit: s.Crit, Weapon: cfg.WeaponSeeker, KnockX: kx, KnockY: ky,
		})
	})
}

// exhaust leaves a faint trail puff.
func exhaust(e *ecs.ECS, x, y, angle float64) {
	particles := components.MustParticles(e.World)
	particles.Spawn(components.Particle{
		X: x - math.Cos(angle)*8, Y: y - math.Sin(angle)*8,
		VX: -math.Cos(angle) * 30, VY: -math.Sin(angle) * 30,
		Life: 0.22, Size: 2, Drag: 3,
		Color: cfg.WeaponTable[cfg.WeaponSeeker].Color,
	})
}
