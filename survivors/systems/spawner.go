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

// UpdateSpawner lands telegraphed arrivals, drops ground zones and
// rolls new enemies on the spawn interval. Wave pacing itself lives in
// the session system; this one only consumes it.
func UpdateSpawner(e *ecs.ECS) {
	session := components.MustSession(e.World)
	dt := session.Dt
	if dt <= 0 {
		return
	}
	spawner := components.MustSpawner(e.World)

	for i := 0; i < spawner.Count; {
		p := &spawner.Pending[i]
		p.Timer -= dt
		if p.Timer > 0 {
			i++
			continue
		}
		factory.CreateEnemy(e, p.Type, p.X, p.Y, true)
		spawner.Pending[i] = spawner.Pending[spawner.Count-1]
		spawner.Count--
	}

	if session.Wave >= cfg.ZoneMinWave {
		session.ZoneTimer += dt
		if session.ZoneTimer >= cfg.ZoneInterval {
			session.ZoneTimer = 0
			dropZone(e, session)
		}
	}

	session.SpawnTimer += dt
	if session.SpawnTimer < session.SpawnInterval {
		return
	}
	session.SpawnTimer = 0

	for n := 1 + bonusSpawns(session.Wave); n > 0; n-- {
		spawnOne(e, session, spawner)
	}
}

// bonusSpawns is the extra-enemy count per tick on later waves.
func bonusSpawns(wave int) int {
	if wave < cfg.BonusWave {
		return 0
	}
	return min((wave-cfg.BonusWave)/cfg.BonusDiv, cfg.BonusCap)
}

// spawnOne rolls a type and places it on the ring around the player.
// Dangerous types are telegraphed rather than dropped cold; swarms
// arrive as a scattered group.
func spawnOne(e *ecs.ECS, session *components.SessionData, spawner *components.SpawnerData) {
	t := rollSpawnType(e, session, spawner)
	x, y := spawnPoint(e, session)

	if t == cfg.EnemySwarm {
		for i := 0; i < cfg.SwarmGroupSize; i++ {
			sx := x + session.Rand.Range(-cfg.SwarmSpread, cfg.SwarmSpread)
			sy := y + session.Rand.Range(-cfg.SwarmSpread, cfg.SwarmSpread)
			factory.CreateEnemy(e, t,
				gamemath.Clamp(sx, cfg.World.Padding, cfg.World.Width-cfg.World.Padding),
				gamemath.Clamp(sy, cfg.World.Padding, cfg.World.Height-cfg.World.Padding),
				true)
		}
		return
	}

	if cfg.EnemyTable[t].Dangerous && spawner.Queue(t, x, y) {
		return
	}
	factory.CreateEnemy(e, t, x, y, true)
}

// rollSpawnType draws one [0,100) roll against the cumulative weight
// thresholds. A row whose type is still locked, or whose gate is shut,
// falls through to the next.
func rollSpawnType(e *ecs.ECS, session *components.SessionData, spawner *components.SpawnerData) cfg.EnemyType {
	roll := session.Rand.Float64() * 100

	unlocked := func(t cfg.EnemyType) bool {
		return session.Wave >= cfg.EnemyTable[t].UnlockWave
	}

	switch {
	case roll < cfg.RollBoss:
		if unlocked(cfg.EnemyBoss) && bossAllowed(session, spawner) {
			return cfg.EnemyBoss
		}
		fallthrough
	case roll < cfg.RollBrute:
		if unlocked(cfg.EnemyBrute) && liveCount(e, cfg.EnemyBrute) < cfg.MaxLiveBrutes {
			return cfg.EnemyBrute
		}
		fallthrough
	case roll < cfg.RollElite:
		if t, ok := pickSpecial(session); ok {
			return t
		}
		fallthrough
	case roll < cfg.RollSwarm:
		if unlocked(cfg.EnemySwarm) {
			return cfg.EnemySwarm
		}
		fallthrough
	case roll < cfg.RollTank:
		if unlocked(cfg.EnemyTank) {
			return cfg.EnemyTank
		}
		fallthrough
	case roll < cfg.RollFast:
		if unlocked(cfg.EnemyFast) {
			return cfg.EnemyFast
		}
		fallthrough
	default:
		return cfg.EnemyWalker
	}
}

func bossAllowed(session *components.SessionData, spawner *components.SpawnerData) bool {
	return !session.BossAlive &&
		session.BossDelay <= 0 &&
		!spawner.HasPending(cfg.EnemyBoss)
}

// specialPool is what the elite slot draws from, in unlock order.
var specialPool = [...]cfg.EnemyType{
	cfg.EnemyElite, cfg.EnemyMirror, cfg.EnemyShielder, cfg.EnemyHornet,
	cfg.EnemyBomber, cfg.EnemySpinner, cfg.EnemyPhaser,
}

// pickSpecial draws uniformly from the unlocked part of the special
// pool, so a fresh unlock immediately joins the rotation.
func pickSpecial(session *components.SessionData) (cfg.EnemyType, bool) {
	var open [len(specialPool)]cfg.EnemyType
	n := 0
	for _, t := range specialPool {
		if session.Wave >= cfg.EnemyTable[t].UnlockWave {
			open[n] = t
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return open[session.Rand.IntN(n)], true
}

func liveCount(e *ecs.ECS, t cfg.EnemyType) int {
	n := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Type == t {
			n++
		}
	})
	return n
}

// spawnPoint picks a point on the ring around the player, clamped to
// the arena so edge-hugging still spawns something.
func spawnPoint(e *ecs.ECS, session *components.SessionData) (float64, float64) {
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	a := session.Rand.Angle()
	d := session.Rand.Range(cfg.SpawnRingMin, cfg.SpawnRingMax)
	x := gamemath.Clamp(pos.X+math.Cos(a)*d, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
	y := gamemath.Clamp(pos.Y+math.Sin(a)*d, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)
	return x, y
}

// dropZone lands a random ground zone near the player.
func dropZone(e *ecs.ECS, session *components.SessionData) {
	entry, _ := components.MustPlayer(e.World)
	pos := components.Position.Get(entry)

	kind := cfg.ZoneKind(session.Rand.IntN(int(cfg.ZoneKindCount)))
	a := session.Rand.Angle()
	d := session.Rand.Range(90, 280)
	x := gamemath.Clamp(pos.X+math.Cos(a)*d, cfg.World.Padding, cfg.World.Width-cfg.World.Padding)
	y := gamemath.Clamp(pos.Y+math.Sin(a)*d, cfg.World.Padding, cfg.World.Height-cfg.World.Padding)
	factory.CreateZone(e, kind, x, y)
}
