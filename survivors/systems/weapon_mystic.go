package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// strikeTargets is reused per trigger to pick random victims.
var strikeTargets []struct{ x, y float64 }

// fireMystic telegraphs strikes over enemies in range; without a
// victim it holds the trigger. Forked Sky makes a landed bolt arc
// onward, Stormcall rains extra strikes on random ground, Smite drops
// everything into one massive bolt on the nearest enemy.
func fireMystic(e *ecs.ECS, slot *components.WeaponState) bool {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	reach := cfg.WeaponTable[cfg.WeaponMystic].Range * weaponArea(e, cfg.WeaponMystic)
	strikeTargets = strikeTargets[:0]
	eachEnemyNear(e, pos.X, pos.Y, reach, func(_ *donburi.Entry, ex, ey float64) {
		strikeTargets = append(strikeTargets, struct{ x, y float64 }{ex, ey})
	})
	if len(strikeTargets) == 0 {
		return false
	}

	forkT := loadout.BranchTier(cfg.WeaponMystic, cfg.BranchMysticChain)
	stormT := loadout.BranchTier(cfg.WeaponMystic, cfg.BranchMysticStorm)
	smiteT := loadout.BranchTier(cfg.WeaponMystic, cfg.BranchMysticSmite)

	count := 1 + extraShots(e, cfg.WeaponMystic) + stormT
	dmgMult := 1.0
	radius := cfg.MysticStrikeRadius * weaponArea(e, cfg.WeaponMystic)
	if stormT > 0 {
		radius *= 1 + 0.12*float64(stormT)
	}
	if smiteT > 0 {
		count = 1
		dmgMult = 2.5 + 0.5*float64(smiteT)
		radius *= 1 + 0.10*float64(smiteT)
	}

	placed := 0
	for i := range loadout.Strikes {
		if placed >= count {
			break
		}
		st := &loadout.Strikes[i]
		if st.Active {
			continue
		}

		var sx, sy float64
		switch {
		case smiteT > 0:
			_, sx, sy, _ = nearestEnemy(e, pos.X, pos.Y, reach)
		case stormT > 0:
			a := session.Rand.Angle()
			r := reach * math.Sqrt(session.Rand.Float64())
			sx, sy = pos.X+math.Cos(a)*r, pos.Y+math.Sin(a)*r
		default:
			pick := strikeTargets[session.Rand.IntN(len(strikeTargets))]
			sx, sy = pick.x, pick.y
		}

		dmg, crit := rollDamage(e, cfg.WeaponMystic, dmgMult)
		*st = components.StrikeState{
			Active: true,
			X:      sx,
			Y:      sy,
			Timer:  cfg.MysticStrikeDelay,
			Radius: radius,
			Damage: dmg,
			Crit:   crit,
			Forks:  forkT,
		}
		placed++
	}
	return placed > 0
}

// UpdateStrikes lands telegraphed strikes whose timers ran out.
func UpdateStrikes(e *ecs.ECS) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	dt := session.Dt

	for i := range loadout.Strikes {
		st := &loadout.Strikes[i]
		if !st.Active {
			continue
		}
		st.Timer -= dt
		if st.Timer > 0 {
			continue
		}
		st.Active = false

		var struck [8]donburi.Entity
		nStruck := 0

		burst(e, st.X, st.Y, 10, cfg.WeaponTable[cfg.WeaponMystic].Color, 140)
		eachEnemyNear(e, st.X, st.Y, st.Radius+40, func(target *donburi.Entry, ex, ey float64) {
			en := components.Enemy.Get(target)
			if !gamemath.CircleHit(st.X, st.Y, st.Radius, ex, ey, en.Size) {
				return
			}
			// falls from above: no push direction
			components.QueueDamage(target, components.DamageEventData{
				Amount: st.Damage, Crit: st.Crit, Weapon: cfg.WeaponMystic,
			})
			if nStruck < len(struck) {
				struck[nStruck] = target.Entity()
				nStruck++
			}
		})

		if st.Forks > 0 {
			forkFrom(e, st, struck, nStruck)
		}
	}
}

// forkFrom arcs a landed bolt through up to Forks fresh victims, each
// hop losing a share of its punch. struck seeds the skip list with the
// bolt's primary victims.
func forkFrom(e *ecs.ECS, st *components.StrikeState, struck [8]donburi.Entity, nStruck int) {
	fx, fy := st.X, st.Y
	dmg := float64(st.Damage)

	for hop := 0; hop < st.Forks && nStruck < len(struck); hop++ {
		dmg *= cfg.MysticForkDecay

		var best *donburi.Entry
		var bx, by, bestSq float64
		bestSq = cfg.MysticForkRange * cfg.MysticForkRange
		eachEnemyNear(e, fx, fy, cfg.MysticForkRange, func(target *donburi.Entry, ex, ey float64) {
			for k := 0; k < nStruck; k++ {
				if struck[k] == target.Entity() {
					return
				}
			}
			if sq := gamemath.DistSq(fx, fy, ex, ey); sq < bestSq {
				best, bx, by, bestSq = target, ex, ey, sq
			}
		})
		if best == nil {
			return
		}

		amount := int(dmg)
		if amount < 1 {
			amount = 1
		}
		components.QueueDamage(best, components.DamageEventData{
			Amount: amount, Crit: st.Crit, Weapon: cfg.WeaponMystic,
		})
		burst(e, bx, by, 6, cfg.WeaponTable[cfg.WeaponMystic].Color, 110)

		struck[nStruck] = best.Entity()
		nStruck++
		fx, fy = bx, by
	}
}
