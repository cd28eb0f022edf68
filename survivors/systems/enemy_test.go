package systems

import (
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

func TestContactDamageHasACooldown(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)

	entry := spawnEnemy(t, e, cfg.EnemyWalker, ppos.X, ppos.Y)
	en := components.Enemy.Get(entry)

	session.Dt = 0.01
	UpdateEnemies(e)

	want := player.MaxHealth - cfg.EnemyTable[cfg.EnemyWalker].Damage
	if player.Health != want {
		t.Fatalf("health = %d, want %d after a touch", player.Health, want)
	}
	if en.ContactCD <= 0 {
		t.Fatal("a touch should start the contact cooldown")
	}

	UpdateEnemies(e)
	if player.Health != want {
		t.Fatal("the cooldown should block an immediate second touch")
	}
}

func TestIceZoneSlowsWhileStoodIn(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	factory.CreateZone(e, cfg.ZoneIce, 900, 500)
	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	en := components.Enemy.Get(entry)

	session.Dt = 0.01
	UpdateEnemies(e)

	if en.SlowMult != cfg.ZoneTable[cfg.ZoneIce].SlowMult {
		t.Fatalf("slow = %v, want %v", en.SlowMult, cfg.ZoneTable[cfg.ZoneIce].SlowMult)
	}
	if en.CurrentSpeed() >= cfg.EnemyTable[cfg.EnemyWalker].Speed {
		t.Fatal("slowed speed should drop below the base")
	}
}

func TestXPZoneDoublesTheDrop(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)

	factory.CreateZone(e, cfg.ZoneXP, 900, 500)
	collectZones(e)

	entry := spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	components.QueueDamage(entry, components.DamageEventData{Amount: 999})
	UpdateCombat(e)

	gemEntry, ok := components.Gem.First(e.World)
	if !ok {
		t.Fatal("kill should drop a gem")
	}
	want := int(float64(cfg.EnemyTable[cfg.EnemyWalker].XP) * cfg.ZoneTable[cfg.ZoneXP].XPMult)
	if got := components.Gem.Get(gemEntry).Value; got != want {
		t.Fatalf("gem value = %d, want %d inside the zone", got, want)
	}
}

func TestLavaBurnsTheHero(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)

	factory.CreateZone(e, cfg.ZoneLava, ppos.X, ppos.Y)
	session.Dt = 0.01
	UpdateZones(e)

	want := player.MaxHealth - cfg.ZoneTable[cfg.ZoneLava].TickDmg
	if player.Health != want {
		t.Fatalf("health = %d, want %d after the first tick", player.Health, want)
	}

	// the next tick waits out the interval
	UpdateZones(e)
	if player.Health != want {
		t.Fatal("lava should tick on its interval, not per frame")
	}
}

func TestZoneExpires(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := factory.CreateZone(e, cfg.ZoneIce, 200, 200)
	session.Dt = cfg.ZoneTable[cfg.ZoneIce].Life + 1
	UpdateZones(e)

	if entry.Valid() {
		t.Fatal("zone should despawn after its life")
	}
}

func TestDecoyExpiresQuietly(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	src := spawnEnemy(t, e, cfg.EnemyMirror, 900, 500)
	decoy := factory.CreateDecoy(e, components.Enemy.Get(src), 940, 500)

	session.Dt = cfg.MirrorDecoyLife + 0.1
	UpdateEnemies(e)

	if decoy.Valid() {
		t.Fatal("decoy should expire on its own")
	}
	if session.Kills != 0 {
		t.Fatal("expiry is not a kill")
	}
}

func TestStraysDespawnFarFromTheHero(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, _ := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)
	ppos.X, ppos.Y = cfg.World.Padding, cfg.World.Padding

	stray := spawnEnemy(t, e, cfg.EnemyWalker,
		cfg.World.Width-cfg.World.Padding, cfg.World.Height-cfg.World.Padding)
	boss := spawnEnemy(t, e, cfg.EnemyBoss,
		cfg.World.Width-cfg.World.Padding, cfg.World.Height-cfg.World.Padding)

	session.Dt = 0.01
	UpdateEnemies(e)

	if stray.Valid() {
		t.Fatal("far stray should despawn")
	}
	if !boss.Valid() {
		t.Fatal("the boss never despawns")
	}
}

func TestVampiricChampionRegenerates(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := spawnEnemy(t, e, cfg.EnemyTank, 900, 500)
	en := components.Enemy.Get(entry)
	en.Affix = cfg.AffixVampiric
	en.Health = en.MaxHealth - 10

	session.Dt = 2.0 / cfg.AffixVampiricRegen // two whole points
	UpdateEnemies(e)

	if got, want := en.Health, en.MaxHealth-10+2; got != want {
		t.Fatalf("health = %d, want %d after regen", got, want)
	}
}
