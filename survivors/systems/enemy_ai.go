package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

// enemyAI is one per-type behavior step. The dispatch table is indexed
// by EnemyType; adding a type without a behavior is a startup panic,
// not a silent idle enemy.
type enemyAI func(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64)

var enemyBehaviors = [cfg.EnemyTypeCount]enemyAI{
	cfg.EnemyWalker:   chaseAI,
	cfg.EnemyFast:     chaseAI,
	cfg.EnemySwarm:    chaseAI,
	cfg.EnemyTank:     chaseAI,
	cfg.EnemyElite:    chaseAI,
	cfg.EnemyMirror:   mirrorAI,
	cfg.EnemyBrute:    chaseAI,
	cfg.EnemyShielder: shielderAI,
	cfg.EnemyHornet:   hornetAI,
	cfg.EnemyBomber:   bomberAI,
	cfg.EnemySpinner:  spinnerAI,
	cfg.EnemyPhaser:   phaserAI,
	cfg.EnemyBoss:     chaseAI,
}

func init() {
	for t, fn := range enemyBehaviors {
		if fn == nil {
			panic("enemy type without behavior: " + cfg.EnemyType(t).String())
		}
	}
}

// chaseAI covers every plain pursuer; the types differ only in the
// stats their table rows carry.
func chaseAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	pursue(en, pos, px, py, dt)
}

// mirrorAI walks in and periodically throws out short-lived copies of
// itself, revealing the real one for a moment. AITimer2 is the reveal
// window the renderer tints on.
func mirrorAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	pursue(en, pos, px, py, dt)
	en.AITimer2 = math.Max(0, en.AITimer2-dt)

	en.AITimer -= dt
	if en.AITimer > 0 {
		return
	}
	en.AITimer = cfg.MirrorDecoyEvery
	en.AITimer2 = cfg.MirrorRevealTime

	session := components.MustSession(e.World)
	for i := 0; i < cfg.MirrorDecoyCount; i++ {
		a := session.Rand.Angle()
		factory.CreateDecoy(e, en, pos.X+math.Cos(a)*30, pos.Y+math.Sin(a)*30)
	}
	burst(e, pos.X, pos.Y, 6, cfg.EnemyTable[cfg.EnemyMirror].Color, 70)
}

// shielderAI keeps its shield arc rotating toward the player while
// walking in, with an occasional straight charge. The combat system
// consults AIAngle when resolving directional hits.
func shielderAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	want := math.Atan2(py-pos.Y, px-pos.X)
	diff := gamemath.AngleDiff(en.AIAngle, want)
	maxTurn := cfg.ShieldTurnRate * dt
	en.AIAngle = gamemath.NormalizeAngle(en.AIAngle + gamemath.Clamp(diff, -maxTurn, maxTurn))

	// mid-charge: hold the stored direction
	if en.AIPhase == 1 {
		en.AITimer2 -= dt
		pos.X += en.AIDirX * cfg.ShielderChargeSpeed * dt
		pos.Y += en.AIDirY * cfg.ShielderChargeSpeed * dt
		if en.AITimer2 <= 0 {
			en.AIPhase = 0
			en.AITimer = cfg.ShielderChargeCD
		}
		return
	}

	pursue(en, pos, px, py, dt)

	en.AITimer -= dt
	if en.AITimer <= 0 && gamemath.Dist(pos.X, pos.Y, px, py) < cfg.ShielderChargeRange {
		en.AIPhase = 1
		en.AITimer2 = cfg.ShielderChargeTime
		en.AIDirX, en.AIDirY = gamemath.Normalize(px-pos.X, py-pos.Y)
	}
}

// Hornet phases. It closes to range, then cycles wait, aim, beam. Any
// movement drops it back to the cooldown phase.
const (
	hornetWaiting = iota
	hornetCharging
	hornetFiring
)

func hornetAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	if gamemath.Dist(pos.X, pos.Y, px, py) > cfg.HornetRange {
		pursue(en, pos, px, py, dt)
		en.AIPhase = hornetWaiting
		en.AITimer = cfg.HornetCooldown
		return
	}

	switch en.AIPhase {
	case hornetWaiting:
		en.AITimer -= dt
		if en.AITimer <= 0 {
			en.AIPhase = hornetCharging
			en.AITimer = cfg.HornetChargeTime
			// the aim locks here; dodging the telegraph works
			en.AIAngle = math.Atan2(py-pos.Y, px-pos.X)
		}
	case hornetCharging:
		en.AITimer -= dt
		if en.AITimer <= 0 {
			en.AIPhase = hornetFiring
			en.AITimer = cfg.HornetFireTime
		}
	case hornetFiring:
		en.AITimer -= dt
		bx := pos.X + math.Cos(en.AIAngle)*cfg.HornetBeamLen
		by := pos.Y + math.Sin(en.AIAngle)*cfg.HornetBeamLen
		if gamemath.PointSegmentDist(px, py, pos.X, pos.Y, bx, by) < cfg.HornetBeamWidth {
			HurtPlayer(e, en.Damage, pos.X, pos.Y, entry)
		}
		if en.AITimer <= 0 {
			en.AIPhase = hornetWaiting
			en.AITimer = cfg.HornetCooldown
		}
	}
}

// bomberAI drops a cluster of fused mines when close, then stands
// stunned while it rearms.
func bomberAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	if en.AIPhase == 1 {
		en.AITimer2 -= dt
		if en.AITimer2 <= 0 {
			en.AIPhase = 0
		}
		return
	}

	pursue(en, pos, px, py, dt)

	en.AITimer -= dt
	if en.AITimer > 0 || gamemath.Dist(pos.X, pos.Y, px, py) > cfg.BomberRange {
		return
	}
	en.AITimer = cfg.BomberCooldown
	en.AIPhase = 1
	en.AITimer2 = cfg.BomberStunTime

	session := components.MustSession(e.World)
	for i := 0; i < cfg.BomberMineCount; i++ {
		a := session.Rand.Angle()
		r := session.Rand.Range(10, cfg.BomberMineDrop)
		factory.CreateMine(e, pos.X+math.Cos(a)*r, pos.Y+math.Sin(a)*r, cfg.MineDamage)
	}
	burst(e, pos.X, pos.Y, 8, cfg.EnemyTable[cfg.EnemyBomber].Color, 110)
}

// Spinner phases. The shell only opens right after a barrage; the
// combat system absorbs damage in the other two.
const (
	spinnerClosed = iota
	spinnerFiring
	spinnerOpen
)

func spinnerAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	en.AIAngle = gamemath.NormalizeAngle(en.AIAngle + cfg.SpinnerSpinRate*dt)
	dist := gamemath.Dist(pos.X, pos.Y, px, py)

	switch en.AIPhase {
	case spinnerClosed:
		pursue(en, pos, px, py, dt)
		if dist < cfg.SpinnerRange {
			en.AIPhase = spinnerFiring
			en.AICount = cfg.SpinnerBarrageSize
			en.AITimer = 0
		}
	case spinnerFiring:
		// bullets walk out along the spin, one per interval
		en.AITimer -= dt
		if en.AITimer <= 0 && en.AICount > 0 {
			en.AITimer = cfg.SpinnerShotInterval
			en.AICount--
			factory.CreateEnemyBullet(e, pos.X, pos.Y, en.AIAngle, cfg.SpinnerShotSpeed, cfg.SpinnerShotDamage)
		}
		if en.AICount <= 0 {
			en.AIPhase = spinnerOpen
			en.AITimer = cfg.SpinnerVulnTime
		}
	case spinnerOpen:
		en.AITimer -= dt
		if en.AITimer <= 0 {
			if dist < cfg.SpinnerRange {
				en.AIPhase = spinnerFiring
				en.AICount = cfg.SpinnerBarrageSize
			} else {
				en.AIPhase = spinnerClosed
			}
		}
	}
}

// Phaser phases. Phased means untouchable and closing in; visible
// means standing, shooting and takeable.
const (
	phaserVisible = iota
	phaserPhased
)

func phaserAI(e *ecs.ECS, entry *donburi.Entry, en *components.EnemyData, pos *dmath.Vec2, px, py, dt float64) {
	en.AITimer -= dt

	if en.AIPhase == phaserPhased {
		pursue(en, pos, px, py, dt)
		if en.AITimer > 0 {
			return
		}
		en.AIPhase = phaserVisible
		en.AITimer = cfg.PhaserVisibleTime

		// blink to a fresh bearing and greet with a radial burst
		session := components.MustSession(e.World)
		a := session.Rand.Angle()
		burst(e, pos.X, pos.Y, 5, cfg.EnemyTable[cfg.EnemyPhaser].Color, 60)
		pos.X = gamemath.Clamp(px+math.Cos(a)*cfg.PhaserJumpRadius, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
		pos.Y = gamemath.Clamp(py+math.Sin(a)*cfg.PhaserJumpRadius, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)
		burst(e, pos.X, pos.Y, 5, cfg.EnemyTable[cfg.EnemyPhaser].Color, 60)
		for i := 0; i < cfg.PhaserBurstSize; i++ {
			sa := float64(i) * (2 * math.Pi / float64(cfg.PhaserBurstSize))
			factory.CreateEnemyBullet(e, pos.X, pos.Y, sa, cfg.PhaserShotSpeed, cfg.PhaserShotDamage)
		}
		return
	}

	if en.AITimer <= 0 {
		en.AIPhase = phaserPhased
		en.AITimer = cfg.PhaserPhasedTime
	}
}
