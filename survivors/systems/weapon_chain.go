package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// fireChain strikes the nearest enemy and schedules the hops. Forked
// Arcs buys extra jumps, not cadence; the hop rhythm never changes.
func fireChain(e *ecs.ECS, slot *components.WeaponState) bool {
	loadout := components.MustLoadout(e.World)
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	target, tx, ty, ok := nearestEnemy(e, pos.X, pos.Y, cfg.WeaponTable[cfg.WeaponChain].Range)
	if !ok {
		return false
	}

	chain := (*components.ChainState)(nil)
	for i := range loadout.Chains {
		if !loadout.Chains[i].Active {
			chain = &loadout.Chains[i]
			break
		}
	}
	if chain == nil {
		return false
	}

	branchMult := 1.0
	if t := loadout.BranchTier(cfg.WeaponChain, cfg.BranchChainVoltage); t > 0 {
		branchMult = 1.3 + 0.3*float64(t-1)
	}
	dmg, crit := rollDamage(e, cfg.WeaponChain, branchMult)

	jumps := cfg.ChainJumps + loadout.BranchTier(cfg.WeaponChain, cfg.BranchChainArcs)
	decay := math.Min(0.95, cfg.ChainDecay+0.02*float64(loadout.BranchTier(cfg.WeaponChain, cfg.BranchChainGround)))

	*chain = components.ChainState{
		Active:   true,
		Timer:    cfg.ChainHopDelay,
		HopsLeft: jumps,
		Damage:   float64(dmg) * decay,
		Decay:    decay,
		Crit:     crit,
		FromX:    tx,
		FromY:    ty,
	}
	chain.AddSeg(pos.X, pos.Y, tx, ty)
	chain.MarkStruck(target.Entity())
	components.QueueDamage(target, components.DamageEventData{
		Amount: dmg, Crit: crit, Weapon: cfg.WeaponChain,
	})
	return true
}

// UpdateChains advances hop timers, jumps to the next unstruck enemy
// and fades the drawn segments.
func UpdateChains(e *ecs.ECS) {
	session := components.MustSession(e.World)
	loadout := components.MustLoadout(e.World)
	dt := session.Dt

	jumpRange := cfg.ChainJumpRange *
		(1 + 0.20*float64(loadout.BranchTier(cfg.WeaponChain, cfg.BranchChainGround)))

	for i := range loadout.Chains {
		chain := &loadout.Chains[i]

		for s := 0; s < chain.SegCount; s++ {
			chain.Segs[s].Time -= dt
		}
		for chain.SegCount > 0 && chain.Segs[0].Time <= 0 {
			copy(chain.Segs[:], chain.Segs[1:chain.SegCount])
			chain.SegCount--
		}

		if !chain.Active {
			continue
		}
		chain.Timer -= dt
		if chain.Timer > 0 {
			continue
		}

		if chain.HopsLeft <= 0 {
			chain.Active = false
			continue
		}

		next, nx, ny, ok := enemyGridNearestUnstruck(e, chain, jumpRange)
		if !ok {
			chain.Active = false
			continue
		}

		dmg := int(chain.Damage)
		if dmg < 1 {
			dmg = 1
		}
		components.QueueDamage(next, components.DamageEventData{
			Amount: dmg, Crit: chain.Crit, Weapon: cfg.WeaponChain,
		})
		chain.AddSeg(chain.FromX, chain.FromY, nx, ny)
		chain.MarkStruck(next.Entity())
		burst(e, nx, ny, 4, cfg.WeaponTable[cfg.WeaponChain].Color, 80)

		chain.FromX, chain.FromY = nx, ny
		chain.Damage *= chain.Decay
		chain.HopsLeft--
		chain.Timer = cfg.ChainHopDelay
	}
}

func enemyGridNearestUnstruck(e *ecs.ECS, chain *components.ChainState, jumpRange float64) (*donburi.Entry, float64, float64, bool) {
	if enemyGrid == nil {
		return nil, 0, 0, false
	}
	ent, nx, ny, ok := enemyGrid.Nearest(chain.FromX, chain.FromY, jumpRange, func(ent donburi.Entity) bool {
		return !e.World.Valid(ent) || chain.Struck(ent)
	})
	if !ok {
		return nil, 0, 0, false
	}
	return e.World.Entry(ent), nx, ny, true
}
