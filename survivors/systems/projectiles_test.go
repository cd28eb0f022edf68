package systems

import (
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

func TestGrazePaysOncePerBullet(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)

	// parked inside the graze band, outside the hitbox
	factory.CreateEnemyBullet(e, ppos.X+cfg.Player.Size+10, ppos.Y, 0, 0, 7)

	session.Dt = 0.01
	UpdateEnemyBullets(e)

	if player.XP != cfg.Combat.GrazeXP {
		t.Fatalf("xp = %d, want %d after a graze", player.XP, cfg.Combat.GrazeXP)
	}
	if player.Health != player.MaxHealth {
		t.Fatal("a graze must not hurt")
	}

	UpdateEnemyBullets(e)
	if player.XP != cfg.Combat.GrazeXP {
		t.Fatal("one bullet should never pay twice")
	}
}

func TestBulletHitLandsAndSpendsTheShot(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)
	player.Dodge = 0

	factory.CreateEnemyBullet(e, ppos.X, ppos.Y, 0, 0, 7)

	session.Dt = 0.01
	UpdateEnemyBullets(e)

	if player.Health >= player.MaxHealth {
		t.Fatal("a direct hit should land damage")
	}
	if _, ok := components.EnemyBullet.First(e.World); ok {
		t.Fatal("the shot should be spent on impact")
	}
	if player.XP != 0 {
		t.Fatal("a hit is not a graze")
	}
}

func TestMineBlastCatchesTheHeroInRange(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)
	player.Dodge = 0

	factory.CreateMine(e, ppos.X+cfg.MineRadius-5, ppos.Y, cfg.MineDamage)

	session.Dt = cfg.MineFuseTime / 2
	UpdateMines(e)
	if player.Health != player.MaxHealth {
		t.Fatal("the mine should sit armed until the fuse runs out")
	}

	UpdateMines(e)
	if player.Health >= player.MaxHealth {
		t.Fatal("standing in the blast should hurt")
	}
	if _, ok := components.Mine.First(e.World); ok {
		t.Fatal("a mine explodes exactly once")
	}
}

func TestMineBlastSparesOutOfRange(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)

	factory.CreateMine(e, ppos.X+cfg.MineRadius*2, ppos.Y, cfg.MineDamage)

	session.Dt = cfg.MineFuseTime
	UpdateMines(e)

	if player.Health != player.MaxHealth {
		t.Fatal("a blast outside its radius should miss")
	}
	if _, ok := components.Mine.First(e.World); ok {
		t.Fatal("the spent mine should be gone")
	}
}
