package systems

import (
	"testing"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

func TestTelegraphLandsAfterTheWarning(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)
	spawner := components.MustSpawner(e.World)

	if !spawner.Queue(cfg.EnemyHornet, 900, 400) {
		t.Fatal("queue refused with room to spare")
	}

	session.Dt = cfg.SpawnWarning / 2
	UpdateSpawner(e)
	if spawner.Count != 1 {
		t.Fatalf("pending = %d, want 1 mid-warning", spawner.Count)
	}
	if _, ok := components.Enemy.First(e.World); ok {
		t.Fatal("enemy arrived before the warning ran out")
	}

	session.Dt = cfg.SpawnWarning
	UpdateSpawner(e)
	if spawner.Count != 0 {
		t.Fatalf("pending = %d, want 0 after landing", spawner.Count)
	}
	entry, ok := components.Enemy.First(e.World)
	if !ok {
		t.Fatal("telegraphed enemy never arrived")
	}
	en := components.Enemy.Get(entry)
	pos := components.Position.Get(entry)
	if en.Type != cfg.EnemyHornet || pos.X != 900 || pos.Y != 400 {
		t.Fatalf("arrived %v at (%v, %v), want hornet at (900, 400)", en.Type, pos.X, pos.Y)
	}
}

func TestTelegraphListOverflow(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	spawner := components.MustSpawner(e.World)

	for i := 0; i < cfg.MaxPendingSpawns; i++ {
		if !spawner.Queue(cfg.EnemyShielder, 100, 100) {
			t.Fatalf("queue refused at %d of %d", i, cfg.MaxPendingSpawns)
		}
	}
	if spawner.Queue(cfg.EnemyShielder, 100, 100) {
		t.Fatal("a full list should refuse, the caller then spawns cold")
	}
}

func TestBossGate(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)
	spawner := components.MustSpawner(e.World)

	if !bossAllowed(session, spawner) {
		t.Fatal("fresh run should allow a boss")
	}

	session.BossAlive = true
	if bossAllowed(session, spawner) {
		t.Fatal("a live boss should block the next")
	}
	session.BossAlive = false

	session.BossDelay = 5
	if bossAllowed(session, spawner) {
		t.Fatal("the respawn delay should block the roll")
	}
	session.BossDelay = 0

	spawner.Queue(cfg.EnemyBoss, 900, 400)
	if bossAllowed(session, spawner) {
		t.Fatal("a telegraphed boss counts as a boss")
	}
}

func TestSpawnTickOnWaveZeroRollsAWalker(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	session.Dt = session.SpawnInterval
	UpdateSpawner(e)

	entry, ok := components.Enemy.First(e.World)
	if !ok {
		t.Fatal("a spawn tick should produce an enemy")
	}
	if got := components.Enemy.Get(entry).Type; got != cfg.EnemyWalker {
		t.Fatalf("wave 0 spawned %v, only the walker is unlocked", got)
	}
}

func TestSpecialPoolOpensWithTheWave(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)
	unlock := cfg.EnemyTable[cfg.EnemyHornet].UnlockWave

	session.Wave = unlock - 1
	for i := 0; i < 200; i++ {
		if tp, ok := pickSpecial(session); ok && tp == cfg.EnemyHornet {
			t.Fatal("the hornet joined the pool before its wave")
		}
	}

	session.Wave = unlock
	seen := false
	for i := 0; i < 200; i++ {
		if tp, ok := pickSpecial(session); ok && tp == cfg.EnemyHornet {
			seen = true
			break
		}
	}
	if !seen {
		t.Fatal("the hornet should join the rotation on its unlock wave")
	}
}

func TestBonusSpawnCurve(t *testing.T) {
	cases := []struct{ wave, want int }{
		{0, 0},
		{cfg.BonusWave, 0},
		{cfg.BonusWave + cfg.BonusDiv, 1},
		{cfg.BonusWave + 2*cfg.BonusDiv, 2},
		{cfg.BonusWave + 10*cfg.BonusDiv, cfg.BonusCap},
	}
	for _, tc := range cases {
		if got := bonusSpawns(tc.wave); got != tc.want {
			t.Errorf("bonusSpawns(%d) = %d, want %d", tc.wave, got, tc.want)
		}
	}
}

func TestWaveBoundaryTightensPacing(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	session.WaveTimer = cfg.WaveLength - 0.01
	step(e, plugin.Input{}, 0.05)

	if session.Wave != 1 {
		t.Fatalf("wave = %d, want 1", session.Wave)
	}
	if session.SpawnInterval >= cfg.SpawnInterval {
		t.Fatalf("interval = %v, want tighter than %v", session.SpawnInterval, cfg.SpawnInterval)
	}
	if session.Difficulty <= 1 {
		t.Fatalf("difficulty = %v, want above 1", session.Difficulty)
	}

	announce := components.MustAnnouncements(e.World)
	if announce.Count == 0 || announce.Items[announce.Count-1].Text != "WAVE 2" {
		t.Fatal("the new wave should be announced")
	}
}

func TestZonesDropFromTheirMinWave(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	// not yet: the timer must not accumulate before the min wave
	session.Dt = cfg.ZoneInterval
	UpdateSpawner(e)
	if _, ok := components.Zone.First(e.World); ok {
		t.Fatal("zones before the min wave")
	}

	session.Wave = cfg.ZoneMinWave
	session.Dt = cfg.ZoneInterval
	UpdateSpawner(e)
	if _, ok := components.Zone.First(e.World); !ok {
		t.Fatal("zone never dropped after the min wave")
	}
}
