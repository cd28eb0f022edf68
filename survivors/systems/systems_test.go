package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

// newGame builds a world wired exactly like the plugin wires it,
// sitting at the title screen.
func newGame(t *testing.T, seed uint64) *ecs.ECS {
	t.Helper()
	ResetGrid()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, 800, 480, seed)
	RegisterUpdate(e)
	return e
}

// startPlaying walks the run straight to live play: Runner with the
// Cleaver, countdown skipped.
func startPlaying(t *testing.T, e *ecs.ECS) (*donburi.Entry, *components.PlayerData) {
	t.Helper()
	StartRun(e, cfg.ClassRunner)
	PickStartingWeapon(e, cfg.WeaponMelee)
	session := components.MustSession(e.World)
	session.EnterState(cfg.StatePlaying)
	return components.MustPlayer(e.World)
}

func step(e *ecs.ECS, in plugin.Input, dt float64) {
	SetFrame(in, dt)
	e.Update()
}

func spawnEnemy(t *testing.T, e *ecs.ECS, typ cfg.EnemyType, x, y float64) *donburi.Entry {
	t.Helper()
	entry := factory.CreateEnemy(e, typ, x, y, false)
	if entry == nil {
		t.Fatalf("CreateEnemy(%v) hit the enemy cap", typ)
	}
	return entry
}

func TestMenuFlowReachesPlaying(t *testing.T) {
	e := newGame(t, 1)
	session := components.MustSession(e.World)

	step(e, plugin.Input{}, 0.016)
	if session.State != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", session.State)
	}

	step(e, plugin.Input{Tap: true}, 0.016)
	if session.State != cfg.StateClassSelect {
		t.Fatalf("state = %v, want class-select", session.State)
	}

	step(e, plugin.Input{Tap: true}, 0.016)
	if session.State != cfg.StateWeaponSelect {
		t.Fatalf("state = %v, want weapon-select", session.State)
	}
	if _, ok := components.Player.First(e.World); !ok {
		t.Fatal("class pick should have spawned the hero")
	}

	step(e, plugin.Input{Tap: true}, 0.016)
	if session.State != cfg.StateCountdown {
		t.Fatalf("state = %v, want ready", session.State)
	}
	loadout := components.MustLoadout(e.World)
	if !loadout.Slots[cfg.WeaponMelee].Unlocked {
		t.Fatal("starting weapon should be unlocked")
	}

	for i := 0; i < 12; i++ {
		step(e, plugin.Input{}, 0.1)
	}
	if session.State != cfg.StatePlaying {
		t.Fatalf("state after countdown = %v, want playing", session.State)
	}
}

func TestMenuSelectionWraps(t *testing.T) {
	e := newGame(t, 1)
	session := components.MustSession(e.World)
	step(e, plugin.Input{Tap: true}, 0.016) // menu -> class select

	step(e, plugin.Input{UpPressed: true}, 0.016)
	if session.Cursor != int(cfg.ClassCount)-1 {
		t.Fatalf("cursor = %d, want wrap to %d", session.Cursor, int(cfg.ClassCount)-1)
	}
	step(e, plugin.Input{DownPressed: true}, 0.016)
	if session.Cursor != 0 {
		t.Fatalf("cursor = %d, want wrap back to 0", session.Cursor)
	}
}

func TestBackOnMenuQuits(t *testing.T) {
	e := newGame(t, 1)
	step(e, plugin.Input{BackPressed: true}, 0.016)
	if !WantsQuit(e) {
		t.Fatal("back on the title screen should request close")
	}
}

func TestPauseMenuRoundTrip(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	step(e, plugin.Input{BackPressed: true}, 0.016)
	if session.State != cfg.StatePaused {
		t.Fatalf("state = %v, want paused", session.State)
	}

	// gameplay clock must hold still while paused
	before := session.GameTime
	step(e, plugin.Input{}, 0.1)
	if session.GameTime != before {
		t.Fatal("GameTime advanced while paused")
	}

	step(e, plugin.Input{BackPressed: true}, 0.016)
	if session.State != cfg.StatePlaying {
		t.Fatalf("state = %v, want playing after resume", session.State)
	}
}

func TestTapTogglesMovement(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)

	if player.Moving {
		t.Fatal("hero should start parked")
	}
	step(e, plugin.Input{Tap: true}, 0.016)
	if !player.Moving {
		t.Fatal("tap should start movement")
	}
	step(e, plugin.Input{Tap: true}, 0.016)
	if player.Moving {
		t.Fatal("second tap should stop movement")
	}
}

func TestArenaWallsStopTheHero(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	pos := components.Position.Get(playerEntry)

	player.Moving = true
	player.Facing = math.Pi // straight at the left wall
	session.Dt = 0.5
	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
	}

	if pos.X != cfg.World.Padding {
		t.Fatalf("pos.X = %v, want pinned at the %v wall", pos.X, cfg.World.Padding)
	}
	if pos.Y < cfg.World.Padding || pos.Y > cfg.World.Height-cfg.World.Padding {
		t.Fatalf("pos.Y = %v, out of the arena", pos.Y)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	type snapshot struct {
		tick    uint64
		kills   int
		health  int
		dealt   int
		taken   int
		enemies int
		px, py  float64
	}

	run := func(seed uint64) snapshot {
		e := newGame(t, seed)
		startPlaying(t, e)
		for i := 0; i < 600; i++ {
			var in plugin.Input
			if i == 30 {
				in.Tap = true // start walking
			}
			step(e, in, 1.0/60)
		}
		session := components.MustSession(e.World)
		entry, player := components.MustPlayer(e.World)
		pos := components.Position.Get(entry)
		n := 0
		components.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
		return snapshot{
			tick: session.Tick, kills: session.Kills, health: player.Health,
			dealt: session.DamageDealt, taken: session.DamageTaken,
			enemies: n, px: pos.X, py: pos.Y,
		}
	}

	a := run(99)
	b := run(99)
	if a != b {
		t.Fatalf("two runs with one seed diverged:\n%+v\n%+v", a, b)
	}

	c := run(100)
	if a == c {
		t.Fatal("different seeds should not replay the same run")
	}
}

func TestRestartRunClearsTheField(t *testing.T) {
	e := newGame(t, 7)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	spawnEnemy(t, e, cfg.EnemyWalker, 900, 500)
	factory.CreateGem(e, 10, 850, 500)
	session.Kills = 42
	player.Points = 3

	RestartRun(e)

	if session.State != cfg.StateMenu {
		t.Fatalf("state = %v, want menu", session.State)
	}
	if session.Kills != 0 {
		t.Fatalf("kills = %d, want 0", session.Kills)
	}
	if _, ok := components.Enemy.First(e.World); ok {
		t.Fatal("enemies should be gone after a restart")
	}
	if _, ok := components.Gem.First(e.World); ok {
		t.Fatal("gems should be gone after a restart")
	}
	if _, ok := components.Player.First(e.World); ok {
		t.Fatal("the hero should be gone after a restart")
	}
}
