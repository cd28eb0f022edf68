package systems

import (
	"math"
	"testing"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

func TestWeaponCooldownScalesWithTier(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	loadout := components.MustLoadout(e.World)
	loadout.Unlock(cfg.WeaponDistance)

	base := cfg.WeaponTable[cfg.WeaponDistance].Cooldown
	if got := weaponCooldown(e, cfg.WeaponDistance); got != base {
		t.Fatalf("tier 1 cooldown = %v, want the base %v", got, base)
	}

	loadout.Slots[cfg.WeaponDistance].Tier = 3
	want := base / (1 + cfg.Combat.TierCooldown*2)
	if got := weaponCooldown(e, cfg.WeaponDistance); math.Abs(got-want) > 1e-9 {
		t.Fatalf("tier 3 cooldown = %v, want %v", got, want)
	}
}

func TestSynergySpeedsUpBothCasters(t *testing.T) {
	e := newGame(t, 1)
	startPlaying(t, e)
	loadout := components.MustLoadout(e.World)
	loadout.Unlock(cfg.WeaponMystic)
	loadout.Unlock(cfg.WeaponMagic)

	for _, w := range []cfg.WeaponID{cfg.WeaponMystic, cfg.WeaponMagic} {
		want := cfg.WeaponTable[w].Cooldown * 0.85
		if got := weaponCooldown(e, w); math.Abs(got-want) > 1e-9 {
			t.Fatalf("%v cooldown = %v, want %v", w, got, want)
		}
	}
}

func TestRollDamageFavorsTheClassWeapon(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	player.CritChance = 0

	// the runner favors the cleaver
	if got, crit := rollDamage(e, cfg.WeaponMelee, 1); got != 15 || crit {
		t.Fatalf("favored damage = %d crit %v, want 15 false", got, crit)
	}

	loadout := components.MustLoadout(e.World)
	loadout.Unlock(cfg.WeaponDistance)
	if got, _ := rollDamage(e, cfg.WeaponDistance, 1); got != 8 {
		t.Fatalf("unfavored damage = %d, want the base 8", got)
	}

	// tier growth
	loadout.Slots[cfg.WeaponMelee].Tier = 3
	if got, _ := rollDamage(e, cfg.WeaponMelee, 1); got != 30 {
		t.Fatalf("tier 3 damage = %d, want 30", got)
	}
}

func TestComboTierRaisesDamage(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	player.CritChance = 0
	session := components.MustSession(e.World)

	base, _ := rollDamage(e, cfg.WeaponMelee, 1)
	session.ComboTier = cfg.ComboGreat
	hot, _ := rollDamage(e, cfg.WeaponMelee, 1)
	if hot <= base {
		t.Fatalf("damage at GREAT = %d, want above the cold %d", hot, base)
	}
}

func TestExtraShotsStack(t *testing.T) {
	e := newGame(t, 1)
	_, player := startPlaying(t, e)
	loadout := components.MustLoadout(e.World)

	if got := extraShots(e, cfg.WeaponDistance); got != 0 {
		t.Fatalf("extra shots = %d, want 0 at start", got)
	}

	loadout.Unlock(cfg.WeaponDistance)
	loadout.Unlock(cfg.WeaponSeeker)
	if got := extraShots(e, cfg.WeaponDistance); got != 1 {
		t.Fatalf("extra shots with the pair = %d, want 1", got)
	}

	player.ExtraProjectile = 2
	if got := extraShots(e, cfg.WeaponDistance); got != 3 {
		t.Fatalf("extra shots stacked = %d, want 3", got)
	}
}

func TestMeleeSwingOnlyHitsTheArc(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	pos := components.Position.Get(playerEntry)
	player.Facing = 0

	front := spawnEnemy(t, e, cfg.EnemyWalker, pos.X+50, pos.Y)
	behind := spawnEnemy(t, e, cfg.EnemyWalker, pos.X-50, pos.Y)
	tooFar := spawnEnemy(t, e, cfg.EnemyWalker, pos.X+300, pos.Y)

	UpdateGrid(e)
	loadout := components.MustLoadout(e.World)
	if !fireMelee(e, &loadout.Slots[cfg.WeaponMelee]) {
		t.Fatal("the swing itself always happens")
	}

	if !front.HasComponent(components.DamageEvent) {
		t.Fatal("enemy in the arc should be hit")
	}
	if behind.HasComponent(components.DamageEvent) {
		t.Fatal("enemy behind the swing should be spared")
	}
	if tooFar.HasComponent(components.DamageEvent) {
		t.Fatal("enemy out of reach should be spared")
	}

	// the queued hit knocks away from the player
	ev := components.DamageEvent.Get(front)
	if ev.KnockX <= 0 {
		t.Fatalf("knock = %v, want a push along +x", ev.KnockX)
	}
}

func TestWhirlwindCoversTheBack(t *testing.T) {
	e := newGame(t, 1)
	playerEntry, player := startPlaying(t, e)
	pos := components.Position.Get(playerEntry)
	player.Facing = 0

	loadout := components.MustLoadout(e.World)
	loadout.Slots[cfg.WeaponMelee].Branch = cfg.BranchMeleeSpin
	loadout.Slots[cfg.WeaponMelee].BranchTier = 1

	behind := spawnEnemy(t, e, cfg.EnemyWalker, pos.X-50, pos.Y)
	UpdateGrid(e)
	fireMelee(e, &loadout.Slots[cfg.WeaponMelee])

	if !behind.HasComponent(components.DamageEvent) {
		t.Fatal("the whirlwind should reach behind the hero")
	}
}
