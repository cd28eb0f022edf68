package systems

import (
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

func TestGemSitsOutItsSpawnTick(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	pos := components.Position.Get(playerEntry)

	entry := factory.CreateGem(e, 7, pos.X, pos.Y)
	if entry == nil {
		t.Fatal("gem spawn failed")
	}

	UpdateGems(e)
	if !entry.Valid() {
		t.Fatal("gem collected on its spawn tick")
	}

	session.Tick++
	UpdateGems(e)
	if entry.Valid() {
		t.Fatal("gem survived a pickup on the player")
	}
	if player.XP != 7 {
		t.Fatalf("xp = %d, want 7", player.XP)
	}
	if session.GemsCollected != 1 {
		t.Fatalf("GemsCollected = %d, want 1", session.GemsCollected)
	}
}

func TestGemMagnetLatchesAndHomes(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	ppos := components.Position.Get(playerEntry)

	inRange := factory.CreateGem(e, 5, ppos.X+player.MagnetRange()-5, ppos.Y)
	outOfRange := factory.CreateGem(e, 5, ppos.X+player.MagnetRange()+200, ppos.Y)
	gin := components.Gem.Get(inRange)
	gout := components.Gem.Get(outOfRange)
	gin.VX, gin.VY = 0, 0
	gout.VX, gout.VY = 0, 0

	startX := components.Position.Get(inRange).X
	session.Dt = 0.1
	UpdateGems(e)

	if !gin.Magnet {
		t.Fatal("gem inside the magnet radius should latch")
	}
	if gout.Magnet {
		t.Fatal("gem outside the radius latched")
	}
	if components.Position.Get(inRange).X >= startX {
		t.Fatal("latched gem should home toward the hero")
	}
}

func TestStreakMultipliesCollection(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	session := components.MustSession(e.World)
	pos := components.Position.Get(playerEntry)

	session.StreakKills = 10 // 2.0x
	factory.CreateGem(e, 7, pos.X, pos.Y)
	session.Tick++
	UpdateGems(e)

	if player.XP != 14 {
		t.Fatalf("xp = %d, want 14 with the streak doubling", player.XP)
	}
}

func TestPotionPickupRespectsTheCap(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	pos := components.Position.Get(playerEntry)

	entry := factory.CreatePotion(e, cfg.PotionHeal, pos.X, pos.Y)
	player.Potions[cfg.PotionHeal] = cfg.MaxPotionHeld

	UpdatePotions(e)
	if !entry.Valid() {
		t.Fatal("a full slot should leave the potion on the ground")
	}

	player.Potions[cfg.PotionHeal] = cfg.MaxPotionHeld - 1
	UpdatePotions(e)
	if entry.Valid() {
		t.Fatal("potion should be picked up with room in the slot")
	}
	if player.Potions[cfg.PotionHeal] != cfg.MaxPotionHeld {
		t.Fatalf("held = %d, want %d", player.Potions[cfg.PotionHeal], cfg.MaxPotionHeld)
	}
}

func TestPotionExpiresOnTheGround(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	session := components.MustSession(e.World)

	entry := factory.CreatePotion(e, cfg.PotionSpeed, 100, 100)
	session.Dt = cfg.PotionLife + 1
	UpdatePotions(e)

	if entry.Valid() {
		t.Fatal("expired potion should despawn")
	}
	if session.PotionsUsed != 0 {
		t.Fatal("expiry is not a use")
	}
}

func TestUsePotionConsumesAndBuffs(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	player.Potions[cfg.PotionShield] = 1
	UsePotion(e, cfg.PotionShield)

	if player.BuffShield != cfg.PotionTable[cfg.PotionShield].Duration {
		t.Fatalf("shield buff = %v, want %v", player.BuffShield, cfg.PotionTable[cfg.PotionShield].Duration)
	}
	if player.Potions[cfg.PotionShield] != 0 {
		t.Fatalf("held = %d, want 0", player.Potions[cfg.PotionShield])
	}
	if session.PotionsUsed != 1 {
		t.Fatalf("PotionsUsed = %d, want 1", session.PotionsUsed)
	}

	// an empty slot is a silent no-op
	UsePotion(e, cfg.PotionShield)
	if session.PotionsUsed != 1 {
		t.Fatal("an empty slot must not count a use")
	}
}

func TestHealClampsAtTheCap(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)

	player.Health = player.MaxHealth - 5
	HealPlayer(e, 50)
	if player.Health != player.MaxHealth {
		t.Fatalf("health = %d, want the cap %d", player.Health, player.MaxHealth)
	}
}

func TestRegenPaysWholePoints(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	session := components.MustSession(e.World)

	player.Regen = 5
	player.Health = player.MaxHealth - 10
	session.Dt = 0.3 // 1.5 points accrued

	UpdatePlayer(e)

	if got, want := player.Health, player.MaxHealth-10+1; got != want {
		t.Fatalf("health = %d, want %d", got, want)
	}
	if player.RegenAcc != 0.5 {
		t.Fatalf("carry = %v, want 0.5", player.RegenAcc)
	}
}
